package v1handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"passgen/internal/generator"
	"passgen/pkg/logger"
	"passgen/pkg/password"
	"passgen/pkg/serrors"
)

// Encode writes the error body.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := e.WriteTo(w); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// readBody reads at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		}

		return nil, errors.Wrap(err, "read body")
	}

	return buf, nil
}

// classFields maps request fields to the classes they toggle.
var classFields = map[string]password.Class{ //nolint: gochecknoglobals
	"lowercase": password.Lowercase,
	"uppercase": password.Uppercase,
	"digits":    password.Digit,
	"symbols":   password.Symbol,
}

// decodeGenerateRequest reads a generation request. Missing fields take their
// value from defaults; when any class flag is present the default classes are
// ignored and absent flags count as false.
func decodeGenerateRequest(buf []byte, defaults generator.Request) (generator.Request, error) {
	req := defaults
	if len(buf) == 0 {
		return req, nil
	}

	var (
		classes    password.Classes
		classesSet bool
	)
	d := jx.DecodeBytes(buf)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "length":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode field \"length\"")
			}
			req.Length = v
		case "count":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode field \"count\"")
			}
			req.Count = v
		case "score":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode field \"score\"")
			}
			req.Score = v
		case "lowercase", "uppercase", "digits", "symbols":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrapf(err, "decode field %q", key)
			}
			classesSet = true
			if v {
				classes = classes.With(classFields[key])
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return generator.Request{}, serrors.With(serrors.ErrBadRequest, "invalid request body: %s", err)
	}

	if classesSet {
		req.Classes = classes
	}

	return req, nil
}

// decodeStrengthRequest reads {"password": "..."}.
func decodeStrengthRequest(buf []byte) (string, error) {
	var (
		pw    string
		found bool
	)
	d := jx.DecodeBytes(buf)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "password" {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "decode field \"password\"")
		}
		pw, found = v, true

		return nil
	}); err != nil {
		return "", serrors.With(serrors.ErrBadRequest, "invalid request body: %s", err)
	}
	if !found {
		return "", serrors.With(serrors.ErrBadRequest, "password is required")
	}

	return pw, nil
}
