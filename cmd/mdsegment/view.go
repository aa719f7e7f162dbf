package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bezhuang/mdsegment/internal/config"
	"github.com/bezhuang/mdsegment/internal/render"
)

var (
	viewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	viewHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type viewModel struct {
	viewport viewport.Model
	title    string
	content  string
	ready    bool
}

func newViewModel(title, content string) viewModel {
	return viewModel{title: title, content: content}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(lipgloss.NewStyle().Width(msg.Width).Render(m.content))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(viewTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render(fmt.Sprintf("↑/k up • ↓/j down • q quit • %3.f%%", m.viewport.ScrollPercent()*100)))
	return b.String()
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the styled rendering in a pager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			title := "stdin"
			if len(args) > 0 && args[0] != "-" {
				title = filepath.Base(args[0])
			}
			content := render.Segments(segments, render.NewStyleSet(nil, config.Palette()))

			opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())}
			if title == "stdin" {
				// stdin 已被读取，按键从终端读取
				opts = append(opts, tea.WithInputTTY())
			}
			p := tea.NewProgram(newViewModel(title, content), opts...)
			_, err = p.Run()
			return err
		},
	}
}
