package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor creates a base64 encoded cursor from a row's timestamp and ID.
// The ID breaks ties between rows sharing a timestamp so pages never skip or
// repeat rows.
func EncodeCursor(timestamp time.Time, id int64) string {
	cursorStr := fmt.Sprintf("%s|%d", timestamp.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(cursorStr))
}

// DecodeCursor parses a base64 encoded cursor back into its timestamp and ID.
func DecodeCursor(cursor string) (time.Time, int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination cursor (base64 decode): %w", err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination cursor (split)")
	}

	timestamp, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination cursor (timestamp parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination cursor (id parse): %w", err)
	}

	return timestamp, id, nil
}
