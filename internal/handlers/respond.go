package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/nimasrn/biztime/internal/model"
	xhttp "github.com/nimasrn/biztime/pkg/http"
	"github.com/nimasrn/biztime/pkg/logger"
)

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// serverErrorResponse is the stable schema for unanticipated failures.
type serverErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	return json.Unmarshal(ctx.PostBody(), dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, errorResponse{Error: msg})
}

func writeServerError(ctx *xhttp.RequestCtx, err error) {
	logger.Error("request failed", "error", err, "path", string(ctx.Path()))
	writeJSON(ctx, xhttp.StatusInternalServerError, serverErrorResponse{
		Kind:    "internal",
		Message: err.Error(),
	})
}

func isValidation(err error) bool {
	var ve *model.ValidationError
	return errors.As(err, &ve)
}

func param(ctx *xhttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}

func paramInt64(ctx *xhttp.RequestCtx, name string) (int64, error) {
	return strconv.ParseInt(param(ctx, name), 10, 64)
}
