/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/convention"
	"dirpx.dev/convention/adapter"
	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/errno"
	"dirpx.dev/convention/internal/metrics"
)

// CorrelationHeader is read from requests and always set on error responses.
const CorrelationHeader = "X-Correlation-ID"

// Meta carries request-scoped extras for one response.
type Meta struct {
	CorrelationID string
	RetryAfter    time.Duration
}

// Writer renders errors using Mapper for the status code. A nil Logger
// means the logrus standard logger.
type Writer struct {
	Mapper apis.Mapper
	Logger logrus.FieldLogger
}

// Write renders err. Errors that are not *convention.Error are coerced with
// errno.From first. Server-side failures (5xx) are logged. A nil err writes
// nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	e := errno.From(err)
	if e.Code == code.OK {
		e = convention.E(code.HALError, e.Message, convention.WithCauseOption(err))
	}
	st := w.Mapper.Status(e.Code, e.Reason)

	id := meta.CorrelationID
	if id == "" {
		id = uuid.NewString()
	}

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	h.Set(CorrelationHeader, id)
	if secs := int(meta.RetryAfter.Round(time.Second) / time.Second); secs > 0 {
		h.Set("Retry-After", strconv.Itoa(secs))
	}
	rw.WriteHeader(st.HTTP)

	if st.HTTP >= http.StatusInternalServerError {
		w.logger().WithFields(logrus.Fields{
			"code":           e.Code.String(),
			"return":         e.Return(),
			"reason":         e.Reason.String(),
			"http_status":    st.HTTP,
			"correlation_id": id,
		}).WithError(e).Error("request failed")
	}
	metrics.ObserveError(metrics.TransportHTTP, e.Code)

	body, merr := marshalView(adapter.ToView(e), id)
	if merr != nil {
		return
	}
	_, _ = rw.Write(body)
}

func (w Writer) logger() logrus.FieldLogger {
	if w.Logger == nil {
		return logrus.StandardLogger()
	}
	return w.Logger
}

func marshalView(v apis.ErrorView, correlationID string) ([]byte, error) {
	fields := map[string]any{
		"code":           v.Code,
		"return":         v.Return,
		"correlation_id": correlationID,
	}
	if v.Reason != "" {
		fields["reason"] = v.Reason
	}
	if v.Message != "" {
		fields["message"] = v.Message
	}
	if len(v.Details) > 0 {
		ds := make([]any, 0, len(v.Details))
		for _, d := range v.Details {
			ds = append(ds, map[string]any{"key": d.Key, "value": d.Value})
		}
		fields["details"] = ds
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(s)
}

// Middleware renders the last error a gin handler attached with c.Error,
// unless the handler already wrote a response. The request's
// X-Correlation-ID is echoed back.
func Middleware(w Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		w.Write(c.Writer, c.Errors.Last().Err, Meta{
			CorrelationID: c.GetHeader(CorrelationHeader),
		})
	}
}

