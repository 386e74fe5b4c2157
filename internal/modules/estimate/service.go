// README: Estimate service turns a request into a prompt, asks the model, and parses the ranges.
package estimate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tripcost/internal/ai"
)

// Service orchestrates prompt composition, the upstream call and range extraction.
type Service struct {
	ai     ai.Completer
	logger *zap.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(completer ai.Completer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ai: completer, logger: logger}
}

// Estimate runs one best-effort pass. Every failure comes back as *Error; there are no retries.
func (s *Service) Estimate(ctx context.Context, req Request) (*Result, error) {
	prompt := BuildPrompt(req)

	content, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		e := classify(err)
		s.logger.Warn("estimate: upstream failed",
			zap.String("kind", string(e.Kind)),
			zap.String("location", req.Location),
			zap.Error(err),
		)
		return nil, e
	}

	ranges, ok := ExtractRanges(content)
	if !ok {
		s.logger.Warn("estimate: ranges not found in model output",
			zap.String("kind", string(KindExtraction)),
			zap.Int("content_len", len(content)),
		)
		return nil, &Error{Kind: KindExtraction, Message: MsgUnparsableRange, Raw: content}
	}

	s.logger.Debug("estimate: parsed ranges",
		zap.String("location", req.Location),
		zap.Int("people", req.People),
		zap.Int("low_start", ranges.LowStart),
		zap.Int("high_end", ranges.HighEnd),
	)

	return &Result{
		LowStart:  ranges.LowStart,
		LowEnd:    ranges.LowEnd,
		HighStart: ranges.HighStart,
		HighEnd:   ranges.HighEnd,
		Notes:     content,
	}, nil
}

// classify maps a Completer failure onto the estimate error taxonomy.
func classify(err error) *Error {
	var decErr *ai.DecodeError
	var shapeErr *ai.ShapeError
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		return &Error{Kind: KindConfiguration, Message: MsgMissingAPIKey}
	case errors.As(err, &decErr):
		return &Error{Kind: KindDecode, Message: MsgInvalidJSON, Detail: decErr.Err.Error()}
	case errors.As(err, &shapeErr):
		msg := MsgEmptyChoices
		if shapeErr.MissingChoices {
			msg = MsgMissingChoices
		}
		return &Error{Kind: KindContract, Message: msg, FullResponse: shapeErr.Payload}
	default:
		return &Error{Kind: KindTransport, Message: MsgUpstreamFailed, Detail: err.Error()}
	}
}
