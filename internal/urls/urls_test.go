package urls

import "testing"

func TestAdmin(t *testing.T) {
	tests := []struct {
		name    string
		console string
		want    string
	}{
		{name: "empty uses default", console: "", want: DefaultAdminPage},
		{name: "trailing slash", console: "https://routerlogin.net/", want: "https://routerlogin.net/adv_index.htm"},
		{name: "no trailing slash", console: "https://192.168.1.1", want: "https://192.168.1.1/adv_index.htm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Admin(tt.console); got != tt.want {
				t.Errorf("Admin(%q) = %q, want %q", tt.console, got, tt.want)
			}
		})
	}
}
