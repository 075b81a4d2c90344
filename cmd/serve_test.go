package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/noteseq/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func createRenderReqBody(t *testing.T, body model.RenderRequestBody) io.Reader {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("could not marshal request body: %v", err)
	}
	return bytes.NewReader(data)
}

func TestHandleRender(t *testing.T) {
	body := createRenderReqBody(t, model.RenderRequestBody{Notation: "c4 e g r4 c''"})
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	w := httptest.NewRecorder()
	HandleRender(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)
	assert.Equal(resp.Header.Get("Content-Type"), "audio/midi")

	read, err := smf.ReadFrom(bytes.NewReader(respBody))
	assert.NoError(err)

	var noteOns int
	for _, track := range read.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				noteOns++
			}
		}
	}
	assert.Equal(4, noteOns)
}

func TestHandleRenderBadNotation(t *testing.T) {
	body := createRenderReqBody(t, model.RenderRequestBody{Notation: "c d nope"})
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	w := httptest.NewRecorder()
	HandleRender(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errResp model.ErrorResponse
	err := json.Unmarshal(respBody, &errResp)
	assert.NoError(err)
	assert.Contains(errResp.Error, "nope")
}

func TestHandleRenderBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleRender(w, req)

	assert := assert.New(t)
	assert.Equal(w.Result().StatusCode, 400)
}
