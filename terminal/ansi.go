package terminal

// ANSI escape sequences for terminal control
const (
	// Screen control
	CLEAR_SCREEN = "\x1b[2J" // Clear entire screen
	CLEAR_LINE   = "\x1b[K"  // Clear line from cursor to end
	CURSOR_HOME  = "\x1b[H"  // Move cursor to top-left (1,1)

	// Cursor visibility
	CURSOR_HIDE = "\x1b[?25l"
	CURSOR_SHOW = "\x1b[?25h"

	// Format string for moving the cursor to row;col (1-based)
	CURSOR_POSITION_FORMAT = "\x1b[%d;%dH"

	// Text formatting
	COLORS_RESET  = "\x1b[m"
	COLORS_INVERT = "\x1b[7m"
)

// ANSI Graphics Mode Constants
const (
	ANSI_BOLD    = 1
	ANSI_REVERSE = 7

	ANSI_COLOR_RED     = 31
	ANSI_COLOR_GREEN   = 32
	ANSI_COLOR_YELLOW  = 33
	ANSI_COLOR_BLUE    = 34
	ANSI_COLOR_MAGENTA = 35
	ANSI_COLOR_CYAN    = 36
	ANSI_COLOR_DEFAULT = 39
)
