package usecase

import (
	"strings"

	"golang.org/x/text/language"

	"adzone/internal/core/domain"
)

// ClassifyDevice performs a best-effort device classification based on UA
// fragments. Tablet patterns are checked before mobile ones because most
// tablet user agents also carry a mobile platform token.
func ClassifyDevice(ua string) string {
	ua = strings.ToLower(ua)
	switch {
	case ua == "":
		return domain.DeviceDesktop
	case strings.Contains(ua, "ipad"),
		strings.Contains(ua, "tablet"),
		strings.Contains(ua, "kindle"),
		strings.Contains(ua, "silk/"),
		strings.Contains(ua, "playbook"),
		strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return domain.DeviceTablet
	case strings.Contains(ua, "mobile"),
		strings.Contains(ua, "iphone"),
		strings.Contains(ua, "ipod"),
		strings.Contains(ua, "android"),
		strings.Contains(ua, "blackberry"),
		strings.Contains(ua, "opera mini"),
		strings.Contains(ua, "iemobile"),
		strings.Contains(ua, "windows phone"):
		return domain.DeviceMobile
	default:
		return domain.DeviceDesktop
	}
}

// ClassifyBrowser extracts a coarse browser family from the User-Agent.
// Chromium derivatives advertise "chrome" and Chrome advertises "safari", so
// the more specific tokens go first.
func ClassifyBrowser(ua string) string {
	ua = strings.ToLower(ua)
	switch {
	case strings.Contains(ua, "edg/"), strings.Contains(ua, "edge/"), strings.Contains(ua, "edga/"), strings.Contains(ua, "edgios/"):
		return "edge"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		return "opera"
	case strings.Contains(ua, "samsungbrowser/"):
		return "samsung"
	case strings.Contains(ua, "chrome/"), strings.Contains(ua, "crios/"), strings.Contains(ua, "chromium/"):
		return "chrome"
	case strings.Contains(ua, "firefox/"), strings.Contains(ua, "fxios/"):
		return "firefox"
	case strings.Contains(ua, "safari/"):
		return "safari"
	case strings.Contains(ua, "msie "), strings.Contains(ua, "trident/"):
		return "ie"
	default:
		return "other"
	}
}

// ClassifyOS infers the operating system family from UA fragments.
func ClassifyOS(ua string) string {
	ua = strings.ToLower(ua)
	switch {
	case strings.Contains(ua, "windows"):
		return "windows"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return "ios"
	case strings.Contains(ua, "android"):
		return "android"
	case strings.Contains(ua, "mac os"), strings.Contains(ua, "macintosh"):
		return "macos"
	case strings.Contains(ua, "linux"), strings.Contains(ua, "x11"), strings.Contains(ua, "cros "):
		return "linux"
	default:
		return "other"
	}
}

// PrimaryLanguage returns the base language of the highest weighted entry
// of an Accept-Language header, or DefaultLanguage.
func PrimaryLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return domain.DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		// a malformed later entry must not hide a valid first one
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		tag, perr := language.Parse(strings.TrimSpace(first))
		if perr != nil {
			return domain.DefaultLanguage
		}
		tags = []language.Tag{tag}
	}
	base, conf := tags[0].Base()
	switch {
	case conf == language.No:
		return domain.DefaultLanguage
	case base.String() == "und", base.String() == "mul": // "*" parses as mul
		return domain.DefaultLanguage
	}
	return strings.ToLower(base.String())
}
