package deeplink

import "testing"

func TestBuild(t *testing.T) {
	b := New("ivanchai_shop_bot")
	got := b.Build("A1")
	want := "https://t.me/ivanchai_shop_bot?start=sku_A1"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuild_EscapesSKU(t *testing.T) {
	b := New("@ivanchai_shop_bot") // "@" отбрасывается
	got := b.Build("ЧАЙ 450/2")
	want := "https://t.me/ivanchai_shop_bot?start=sku_%D0%A7%D0%90%D0%99+450%2F2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := New("bot")
	if b.Build("X") != b.Build("X") {
		t.Fatalf("deep link must be deterministic")
	}
}

func TestBuild_DisabledWithoutBot(t *testing.T) {
	b := New("  ")
	if b.Enabled() {
		t.Fatalf("builder must be disabled without bot username")
	}
	if got := b.Build("A1"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
