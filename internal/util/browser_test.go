package util

import (
	"runtime"
	"testing"
)

func TestBrowserCommand_PassesURL(t *testing.T) {
	t.Parallel()

	const url = "http://localhost:20262"
	cmd := browserCommand(url)
	if len(cmd.Args) == 0 || cmd.Args[len(cmd.Args)-1] != url {
		t.Fatalf("args=%v, want url as last argument", cmd.Args)
	}

	switch runtime.GOOS {
	case "darwin":
		if cmd.Args[0] != "open" {
			t.Fatalf("args=%v", cmd.Args)
		}
	case "linux":
		if cmd.Args[0] != "xdg-open" {
			t.Fatalf("args=%v", cmd.Args)
		}
	}
}
