package utils

import (
	"bytes"
	"encoding/json"
	"time"
)

// RFC3339Date сериализует время в JSON в формате RFC3339 (UTC).
type RFC3339Date struct {
	time.Time
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// UnmarshalJSON принимает RFC3339 с дробными секундами и без них; null оставляет нулевое время
func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}
