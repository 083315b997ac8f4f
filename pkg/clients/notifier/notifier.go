package notifier

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Client delivers published plan announcements to staff. This console
// implementation writes the message to the given writer; a real transport
// (team chat, SMS) would sit behind the same Send signature.
type Client struct {
	out    io.Writer
	logger *zap.Logger
}

// NewClient creates a notifier writing to out
func NewClient(out io.Writer, logger *zap.Logger) *Client {
	return &Client{out: out, logger: logger}
}

// Send delivers one announcement
func (c *Client) Send(ctx context.Context, planID, message string) error {
	if _, err := fmt.Fprintf(c.out, "%s\n", message); err != nil {
		return fmt.Errorf("failed to deliver announcement: %w", err)
	}

	c.logger.Info("Announcement delivered", zap.String("plan_id", planID))
	return nil
}
