// Released under an MIT license. See LICENSE.

// Package journal persists history records as a JSON array on disk.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/reckon-calc/reckon/internal/history"
	"github.com/reckon-calc/reckon/internal/op"
	"github.com/reckon-calc/reckon/internal/type/num"
)

// Save writes the records to the file at path, replacing whatever was
// there.
func Save(path string, records []history.Record) error {
	b, err := encode(records)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.Write(b); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Load reads records from the file at path. A missing file is an
// empty history, not an error.
func Load(path string) ([]history.Record, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return decode(b)
}

func encode(records []history.Record) ([]byte, error) {
	b := []byte("[]")

	var err error

	for i, r := range records {
		p := strconv.Itoa(i)

		for _, kv := range []struct {
			key   string
			value any
		}{
			{p + ".op", r.Op.Name()},
			{p + ".left", r.Left.String()},
			{p + ".right", r.Right.String()},
			{p + ".result", r.Result.String()},
			{p + ".seq", r.Seq},
			{p + ".time", r.Time.Format(time.RFC3339Nano)},
		} {
			b, err = sjson.SetBytes(b, kv.key, kv.value)
			if err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

func decode(b []byte) ([]history.Record, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("history file is not valid JSON")
	}

	var records []history.Record

	for i, v := range gjson.ParseBytes(b).Array() {
		r, err := record(v)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i+1, err)
		}

		records = append(records, r)
	}

	return records, nil
}

func record(v gjson.Result) (history.Record, error) {
	o, err := op.Create(v.Get("op").String())
	if err != nil {
		return history.Record{}, err
	}

	left, err := num.Parse(v.Get("left").String())
	if err != nil {
		return history.Record{}, err
	}

	right, err := num.Parse(v.Get("right").String())
	if err != nil {
		return history.Record{}, err
	}

	result, err := num.Parse(v.Get("result").String())
	if err != nil {
		return history.Record{}, err
	}

	var ts time.Time

	if raw := v.Get("time").String(); raw != "" {
		ts, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return history.Record{}, err
		}
	}

	return history.Record{
		Op:     o,
		Left:   left,
		Right:  right,
		Result: result,
		Seq:    int(v.Get("seq").Int()),
		Time:   ts,
	}, nil
}
