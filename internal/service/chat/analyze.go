package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tcpchat/internal/domain"
)

const analysisPrompt = `You are given the messages of a chat room, each prefixed with the author's username.
Identify the topics that were discussed, point out patterns in the conversation and describe
the participants' mood and intentions. Add relevant background on the subjects they talked about.
Be concise and direct, with no introduction. The messages follow:
`

// AnalyzeRoom asks the configured LLM for a summary of a room's history.
func (s *Service) AnalyzeRoom(ctx context.Context, roomID uuid.UUID) (string, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return "", err
	}
	if roomID == uuid.Nil {
		return "", domain.NewValidationError("room_uuid", "required")
	}
	if err := s.requireMember(ctx, caller, roomID); err != nil {
		return "", err
	}
	if s.llm == nil {
		return "", fmt.Errorf("chat.AnalyzeRoom: no llm provider configured: %w", domain.ErrUnavailable)
	}

	msgs, err := s.messages.ListByRoomWithSenders(ctx, roomID)
	if err != nil {
		return "", fmt.Errorf("chat.AnalyzeRoom: %w", err)
	}
	if len(msgs) == 0 {
		return "", domain.NewValidationError("room_uuid", "room has no messages to analyze")
	}

	summary, err := s.llm.Summarize(ctx, buildAnalysisPrompt(msgs))
	if err != nil {
		s.log.ErrorContext(ctx, "room analysis failed",
			slog.String("room_id", roomID.String()),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("chat.AnalyzeRoom: %w: %v", domain.ErrUnavailable, err)
	}

	s.log.InfoContext(ctx, "room analyzed",
		slog.String("room_id", roomID.String()),
		slog.Int("messages", len(msgs)))
	return strings.TrimSpace(summary), nil
}

func buildAnalysisPrompt(msgs []domain.AuthoredMessage) string {
	var b strings.Builder
	b.WriteString(analysisPrompt)
	for _, m := range msgs {
		fmt.Fprintf(&b, "\n%s: %s", m.SenderName, m.Text)
	}
	return b.String()
}
