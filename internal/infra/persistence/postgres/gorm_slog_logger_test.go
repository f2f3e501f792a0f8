package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "events"`, 3 }

	t.Run("slow query carries request id", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})
		ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "GORM slow query", line["msg"])
		assert.Equal(t, "req-7", line["request_id"])
		assert.EqualValues(t, 3, line["rows"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("fast query hidden outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

		l.Trace(context.Background(), time.Now(), query, nil)

		assert.Empty(t, buf.String())
	})
}
