package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// 颜色只在 errOut 为终端时生效。
func (a *App) diagnostic(msg string) {
	style := lipgloss.NewRenderer(a.errOut).NewStyle().Foreground(lipgloss.Color("1"))
	fmt.Fprintln(a.errOut, style.Render(msg))
}

func (a *App) warn(msg string) {
	style := lipgloss.NewRenderer(a.errOut).NewStyle().Foreground(lipgloss.Color("3"))
	fmt.Fprintln(a.errOut, style.Render(msg))
}
