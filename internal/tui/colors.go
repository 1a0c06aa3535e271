package tui

// Color constants for the habi TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A4A3F" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F0EA" // Primary text (habit names, titles)
	ColorSecondaryText = "#AFBDB4" // Secondary text - muted green-grey
	ColorDisabledText  = "#6D7A72" // Archived/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#22C55E" // Checkmarks, active borders
	ColorAccentBright = "#86EFAC" // Selected row highlight

	// State Colors
	ColorError   = "#EF4444" // Store failures
	ColorStreak  = "#F59E0B" // Streak counter
	ColorSuccess = "#22C55E" // Success, confirmations
)
