package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
	"navhud/internal/tui/utils"
)

// StatusBar is the bottom line: transient messages, or key hints and route info.
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = true
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// ClearMessage removes the status message
func (s *StatusBar) ClearMessage() *StatusBar {
	s.ShowMessage = false
	s.Message = ""
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()

	var content string

	if s.ShowMessage && s.Message != "" {
		content = s.Message
	} else {
		if s.LeftText != "" && s.RightText != "" {
			leftWidth := lipgloss.Width(s.LeftText)
			rightWidth := lipgloss.Width(s.RightText)
			padding := s.Width - leftWidth - rightWidth - design.SpaceSM*2 // Account for style padding

			if padding > 0 {
				content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
			} else {
				content = utils.TruncateString(s.LeftText, s.Width-design.SpaceSM*2)
			}
		} else if s.LeftText != "" {
			content = s.LeftText
		} else if s.RightText != "" {
			content = s.RightText
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if s.ShowMessage {
		switch s.MessageType {
		case model.StatusBarSuccess:
			return design.StatusBarSuccessStyle
		case model.StatusBarError:
			return design.StatusBarErrorStyle
		case model.StatusBarWarning:
			return design.StatusBarWarningStyle
		case model.StatusBarInfo:
			return design.StatusBarInfoStyle
		default:
			return design.StatusBarStyle
		}
	}
	return design.StatusBarStyle
}

// FormatRouteInfo summarizes the route for the right side of the status bar.
func FormatRouteInfo(routeName, remaining string, speed int) string {
	if routeName == "" {
		return "No route"
	}
	result := routeName
	if remaining != "" {
		result += fmt.Sprintf(" · %s left", remaining)
	}
	if speed > 1 {
		result += fmt.Sprintf(" · %d×", speed)
	}
	return result
}
