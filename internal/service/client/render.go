package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/service/common"
)

// gridWidth is the number of tiles per rendered row.
const gridWidth = 5

//nolint:gochecknoglobals // Shared terminal styles.
var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	wrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	phaseStyles = map[pb.AlarmPhase]lipgloss.Style{
		pb.AlarmPhase_ALARM_PHASE_IDLE:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		pb.AlarmPhase_ALARM_PHASE_SCHEDULED: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		pb.AlarmPhase_ALARM_PHASE_RINGING:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		pb.AlarmPhase_ALARM_PHASE_SNOOZED:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// PhaseName returns the short lowercase name of a phase.
func PhaseName(phase pb.AlarmPhase) string {
	name := strings.TrimPrefix(phase.String(), "ALARM_PHASE_")

	return strings.ToLower(name)
}

// RenderState renders the alarm state and, while ringing, the round grid.
func RenderState(state *pb.AlarmState) string {
	if state == nil {
		return mutedStyle.Render("<no state>")
	}

	lines := []string{
		labelStyle.Render("Alarm: ") + phaseStyles[state.GetPhase()].Render(PhaseName(state.GetPhase())),
	}

	switch state.GetPhase() {
	case pb.AlarmPhase_ALARM_PHASE_SCHEDULED:
		lines = append(lines, labelStyle.Render("Wakes at: ")+formatTime(state.GetWakeAt().AsTime()))
	case pb.AlarmPhase_ALARM_PHASE_SNOOZED:
		lines = append(lines, labelStyle.Render("Resumes at: ")+formatTime(state.GetResumeAt().AsTime()))
	case pb.AlarmPhase_ALARM_PHASE_IDLE, pb.AlarmPhase_ALARM_PHASE_RINGING, pb.AlarmPhase_ALARM_PHASE_UNSPECIFIED:
	}

	changed := "<unknown>"
	if ts := state.GetTimestamp(); ts != nil {
		changed = formatTime(ts.AsTime())
	}

	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Changed %s by %s", changed, common.FormatActor(state.GetLastActor()))))

	if round := state.GetRound(); round != nil {
		lines = append(lines, "", RenderRound(round))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderRound renders the tile grid numbered in reading order from 1.
func RenderRound(round *pb.Round) string {
	accent := lipgloss.Color(round.GetAccent())
	resolved := round.GetPhase() == pb.RoundPhase_ROUND_PHASE_RESOLVED

	rows := make([]string, 0, len(round.GetTiles())/gridWidth+2)
	cells := make([]string, 0, gridWidth)

	for i, tile := range round.GetTiles() {
		label := fmt.Sprintf(" %2d ", i+1)

		var cell string

		switch {
		case tile.GetRevealed() && tile.GetCorrect():
			cell = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")).Render(label)
		case tile.GetRevealed():
			cell = wrongStyle.Render("  ✗ ")
		case resolved && tile.GetCorrect():
			cell = lipgloss.NewStyle().Foreground(accent).Underline(true).Render(label)
		default:
			cell = mutedStyle.Render(label)
		}

		cells = append(cells, cell)

		if len(cells) == gridWidth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}

	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, mutedStyle.Render(roundCaption(round)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func roundCaption(round *pb.Round) string {
	switch {
	case round.GetJudging():
		return "Judging..."
	case round.GetPhase() == pb.RoundPhase_ROUND_PHASE_PREVIEW:
		return fmt.Sprintf("Round %d: memorize the highlighted tiles", round.GetGeneration())
	case round.GetPhase() == pb.RoundPhase_ROUND_PHASE_INTERACTIVE:
		return fmt.Sprintf("Round %d: tap the tiles you saw (wake-gate tap <n>)", round.GetGeneration())
	case round.GetOutcome() == pb.RoundOutcome_ROUND_OUTCOME_WON:
		return fmt.Sprintf("Round %d: solved", round.GetGeneration())
	case round.GetOutcome() == pb.RoundOutcome_ROUND_OUTCOME_LOST:
		return fmt.Sprintf("Round %d: wrong tile, a new round follows", round.GetGeneration())
	default:
		return fmt.Sprintf("Round %d", round.GetGeneration())
	}
}

// RenderEvent renders one streamed event as a single line plus the grid for round changes.
func RenderEvent(event *pb.Event) string {
	kind := strings.ToLower(strings.TrimPrefix(event.GetKind().String(), "EVENT_KIND_"))
	line := fmt.Sprintf("%s %s %s",
		mutedStyle.Render(formatTime(event.GetAt().AsTime())),
		labelStyle.Render(kind),
		phaseStyles[event.GetState().GetPhase()].Render(PhaseName(event.GetState().GetPhase())),
	)

	if event.GetKind() == pb.EventKind_EVENT_KIND_ALARM_IDLE {
		line += " " + mutedStyle.Render("("+reasonName(event.GetReason())+")")
	}

	if round := event.GetState().GetRound(); round != nil && event.GetKind() == pb.EventKind_EVENT_KIND_ROUND_CHANGED {
		return lipgloss.JoinVertical(lipgloss.Left, line, RenderRound(round))
	}

	return line
}

// RenderSessions renders the journal as a table, newest first.
func RenderSessions(journal *pb.SessionJournal) string {
	sessions := journal.GetSessions()
	if len(sessions) == 0 {
		return mutedStyle.Render("No sessions recorded yet.")
	}

	lines := []string{labelStyle.Render(fmt.Sprintf("%-20s %-9s %-6s %-12s %s", "Started", "Rang for", "Lost", "Ended by", "Reason"))}

	for _, session := range sessions {
		started := session.GetStartedAt().AsTime()
		duration := session.GetEndedAt().AsTime().Sub(started).Round(time.Second)

		endedBy := "-"
		if session.GetEndedBy() != nil {
			endedBy = common.FormatActor(session.GetEndedBy())
		}

		lines = append(lines, fmt.Sprintf("%-20s %-9s %-6d %-12s %s",
			formatTime(started), duration, session.GetRoundsLost(), endedBy, reasonName(session.GetEndReason())))
	}

	return strings.Join(lines, "\n")
}

func reasonName(reason pb.IdleReason) string {
	return strings.ToLower(strings.TrimPrefix(reason.String(), "IDLE_REASON_"))
}

func formatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}
