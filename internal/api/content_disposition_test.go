package api

import "testing"

func TestBuildContentDisposition(t *testing.T) {
	t.Parallel()

	got := buildContentDisposition("발주서_2026-10-18_청정농원.xlsx", "purchase-order-2026-10-18.xlsx")
	want := "attachment; filename=\"purchase-order-2026-10-18.xlsx\"; filename*=UTF-8''%EB%B0%9C%EC%A3%BC%EC%84%9C_2026-10-18_%EC%B2%AD%EC%A0%95%EB%86%8D%EC%9B%90.xlsx"
	if got != want {
		t.Fatalf("content-disposition mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestAsciiFileName(t *testing.T) {
	t.Parallel()

	if got := asciiFileName("purchase-order-2026년.xlsx"); got != "purchase-order-2026.xlsx" {
		t.Fatalf("asciiFileName=%q", got)
	}
	if got := asciiFileName("발주서"); got != "download.xlsx" {
		t.Fatalf("asciiFileName=%q", got)
	}
}
