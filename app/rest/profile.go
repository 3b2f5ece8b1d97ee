package rest

import (
	"errors"
	"net/http"

	"github.com/Semior001/newsdigest/app/digest"
	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slog"
)

// Client-facing messages. The cause of a failure is never exposed.
const (
	msgProfileReceived = "Profile received successfully!"
	msgSummarizeFailed = "Error summarizing articles."
	msgInternalError   = "An error occurred while processing the profile."
)

type profileRequest struct {
	Preferences string `json:"preferences"`
}

type profileResponse struct {
	Message string `json:"message"`
	Summary string `json:"summary,omitempty"`
}

func (s *Server) profile(c echo.Context) error {
	ctx := c.Request().Context()

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		s.Logger.WarnCtx(ctx, "failed to bind profile", slog.Any("err", err))
		return c.JSON(http.StatusInternalServerError, profileResponse{Message: msgInternalError})
	}

	s.Logger.InfoCtx(ctx, "profile received", slog.String("preferences", req.Preferences))

	res, err := s.Service.Digest(ctx, req.Preferences)
	if err != nil {
		s.Logger.ErrorCtx(ctx, "failed to make digest",
			slog.String("preferences", req.Preferences),
			slog.Any("err", err),
		)

		if errors.Is(err, digest.ErrSummarize) {
			return c.JSON(http.StatusInternalServerError, profileResponse{Message: msgSummarizeFailed})
		}
		return c.JSON(http.StatusInternalServerError, profileResponse{Message: msgInternalError})
	}

	s.Logger.InfoCtx(ctx, "digest made",
		slog.String("category", res.Category),
		slog.Int("feeds", len(res.Feeds)),
		slog.Int("fragments", res.Fragments),
	)

	return c.JSON(http.StatusOK, profileResponse{Message: msgProfileReceived, Summary: res.Summary})
}
