package responsive

import "strings"

// ThemeTokenPrefix prefixes theme tokens that override the display mode of a
// UI item, e.g. "display.GridRow": "grid".
const ThemeTokenPrefix = "display."

// DefaultDisplayTokens lists UI items whose visible state needs a display mode
// other than block.
var DefaultDisplayTokens = map[string]string{
	"GridRow": "flex",
}

// DisplayToken resolves the display mode for uiItem. Overrides are checked in
// order, then DefaultDisplayTokens, then DefaultDisplayToken.
func DisplayToken(uiItem string, overrides ...map[string]string) string {
	for _, table := range overrides {
		if token := strings.TrimSpace(table[uiItem]); token != "" {
			return token
		}
	}
	if token := DefaultDisplayTokens[uiItem]; token != "" {
		return token
	}
	return DefaultDisplayToken
}

// ThemeOverrides extracts "display.<UIItem>" entries from theme tokens.
func ThemeOverrides(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string)
	for key, value := range tokens {
		if item, ok := strings.CutPrefix(key, ThemeTokenPrefix); ok && item != "" {
			out[item] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
