package console

import "strings"

// Selectors captures the DOM contract between the flows and the admin
// console markup. Every element the flows touch is named here, so a
// firmware update that moves a control is a one-file fix and the
// selector validation tool can check the whole contract against a saved
// page dump.
type Selectors struct {
	// Certificate interstitial. The self-signed certificate makes
	// Chromium interpose a warning page before the console loads.
	InterstitialMarker string // body text unique to the warning page
	DetailsButton      string // expands the advanced section
	ProceedLink        string // continues to the site anyway

	// Login page.
	UsernameField string
	PasswordField string
	LoginButton   string // the console submits via an anchor, not a form button
	LoginURLMark  string // URL fragment identifying the login page
	TakeoverURL   string // URL fragment identifying the concurrent-session page
	TakeoverYes   string // confirms displacing the other admin session

	// Status page. The badge class carries the radio state.
	AdvancedButton   string   // expands the Advanced Setup pane
	ContentPane      string   // container for the per-feature status icons
	StatusBadge      string   // badge element inside the 2.4GHz section
	StatusOnClass    string   // badge class fragment meaning the radio is on
	StatusOffClasses []string // badge class fragments meaning the radio is off

	// Wireless settings form. The form is served inside a named frame.
	WirelessMenu  string // menu entry that loads the form
	ConfigFrame   string // name of the frame hosting the form
	RadioCheckbox string
	RadioLabel    string // the label intercepts clicks aimed at the checkbox
	ApplyButton   string
}

// DefaultSelectors returns the contract for the stock Netgear firmware.
func DefaultSelectors() Selectors {
	return Selectors{
		InterstitialMarker: "Your connection is not private",
		DetailsButton:      "#details-button",
		ProceedLink:        "#proceed-link",

		UsernameField: "input[name='username']",
		PasswordField: "input[name='password']",
		LoginButton:   "a[onclick*='login']",
		LoginURLMark:  "login",
		TakeoverURL:   "multi_login",
		TakeoverYes:   "#yes",

		AdvancedButton:   "#advanced_bt",
		ContentPane:      "#content_icons",
		StatusBadge:      "#title_bgn #words_title div[class^='img_status']",
		StatusOnClass:    "img_status_good",
		StatusOffClasses: []string{"img_status_warning", "img_status_error"},

		WirelessMenu:  "#wladv",
		ConfigFrame:   "formframe",
		RadioCheckbox: "#enable_ap",
		RadioLabel:    "label[for='enable_ap']",
		ApplyButton:   "#apply",
	}
}

// ConfigFrameElement returns a selector for the frame element hosting the
// wireless settings form.
func (s Selectors) ConfigFrameElement() string {
	return "iframe[name='" + s.ConfigFrame + "']"
}

// BadgeState maps a status badge class attribute to a radio verdict.
// The second return is false when the class matches neither the on nor
// the off set, which means the page layout changed under us.
func (s Selectors) BadgeState(class string) (on, known bool) {
	if strings.Contains(class, s.StatusOnClass) {
		return true, true
	}
	for _, off := range s.StatusOffClasses {
		if strings.Contains(class, off) {
			return false, true
		}
	}
	return false, false
}
