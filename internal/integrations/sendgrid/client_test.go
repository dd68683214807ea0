package sendgrid

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfkayan044/securedrive-sub000/pkg/logger"
)

func TestClient_SendWithAttachment(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient("SG.test", "noreply@securedrive.test", "SecureDrive", srv.URL, time.Second, logger.Nop())

	err := client.Send(context.Background(), &Message{
		ToEmail:   "ali@example.com",
		ToName:    "Ali",
		Subject:   "Transfer voucher AB12CD34",
		PlainText: "Voucher attached",
		Attachments: []Attachment{
			{Filename: "voucher_AB12CD34.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")},
		},
	})

	require.NoError(t, err)
	attachments := payload["attachments"].([]interface{})
	require.Len(t, attachments, 1)
	att := attachments[0].(map[string]interface{})
	assert.Equal(t, "voucher_AB12CD34.pdf", att["filename"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.3")), att["content"])
}

func TestClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Does not contain a valid address.","field":"personalizations.0.to.0.email"}]}`))
	}))
	defer srv.Close()

	client := NewClient("SG.test", "noreply@securedrive.test", "SecureDrive", srv.URL, time.Second, logger.Nop())

	err := client.Send(context.Background(), &Message{ToEmail: "broken", Subject: "x", PlainText: "x"})

	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Does not contain a valid address.")
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", "", "", "", 0, logger.Nop())
	err := client.Send(context.Background(), &Message{ToEmail: "ali@example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
