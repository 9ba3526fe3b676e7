package util

import (
	"os/exec"
	"runtime"
)

// browserCommand 各平台默认的打开方式
func browserCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// fallbackBrowsers 默认方式失败后依次尝试
func fallbackBrowsers() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"explorer"}
	case "linux":
		return []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
	default:
		return nil
	}
}

// OpenBrowser 用默认浏览器打开上传页
func OpenBrowser(url string) error {
	return browserCommand(url).Start()
}

// OpenBrowserWithFallback 默认方式失败时尝试备选浏览器
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	for _, name := range fallbackBrowsers() {
		if exec.Command(name, url).Start() == nil {
			return nil
		}
	}

	return err
}
