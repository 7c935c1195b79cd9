package constants

import "time"

// SyntaxTheme is the default Chroma theme for fields that highlight their
// contents.
//
// Available themes:
//
// Dark themes (recommended for terminals):
//   - github-dark       - GitHub's dark theme (default)
//   - monokai           - Classic Sublime Text theme
//   - dracula           - Popular purple/pink theme
//   - nord              - Cool bluish theme
//   - gruvbox           - Warm, retro colors
//   - onedark           - Atom's One Dark
//   - catppuccin-mocha  - Pastel dark theme
//   - tokyonight-night  - Popular VSCode theme
//
// Light themes:
//   - github            - GitHub's light theme
//   - solarized-light   - Classic Solarized light
//   - catppuccin-latte  - Pastel light theme
//   - vs                - Visual Studio light
const SyntaxTheme = "github-dark"

// BlinkInterval is how long the cursor stays in each blink phase.
const BlinkInterval = 530 * time.Millisecond

// ClickInterval is the longest gap between presses that still counts
// towards a double or triple click.
const ClickInterval = 400 * time.Millisecond

// MaxLines is the default number of rows a multi-line field shows before it
// scrolls.
const MaxLines = 8

// TabWidth is the number of cells a tab is drawn with.
const TabWidth = 4

// DraftTTL is how long an untouched draft is kept before it is purged.
const DraftTTL = 30 * 24 * time.Hour
