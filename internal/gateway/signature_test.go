package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
)

func sign(secret, dataID, requestID, ts string) string {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "super-secret"
	dataID := "pay-123"
	requestID := "req-abc"
	ts := "1717171717"

	header := fmt.Sprintf("ts=%s,v1=%s", ts, sign(secret, dataID, requestID, ts))

	if !VerifySignature(secret, header, requestID, dataID) {
		t.Fatalf("valid signature rejected")
	}

	// espaços após a vírgula também são aceitos
	spaced := fmt.Sprintf("ts=%s, v1=%s", ts, sign(secret, dataID, requestID, ts))
	if !VerifySignature(secret, spaced, requestID, dataID) {
		t.Fatalf("valid signature with spaces rejected")
	}
}

func TestVerifySignatureRejects(t *testing.T) {
	secret := "super-secret"
	dataID := "pay-123"
	requestID := "req-abc"
	ts := "1717171717"
	good := sign(secret, dataID, requestID, ts)

	cases := []struct {
		name      string
		secret    string
		header    string
		requestID string
		dataID    string
	}{
		{"secret errado", "outro", fmt.Sprintf("ts=%s,v1=%s", ts, good), requestID, dataID},
		{"payload trocado", secret, fmt.Sprintf("ts=%s,v1=%s", ts, good), requestID, "pay-999"},
		{"request-id trocado", secret, fmt.Sprintf("ts=%s,v1=%s", ts, good), "req-zzz", dataID},
		{"ts adulterado", secret, fmt.Sprintf("ts=999,v1=%s", good), requestID, dataID},
		{"sem v1", secret, fmt.Sprintf("ts=%s", ts), requestID, dataID},
		{"sem ts", secret, fmt.Sprintf("v1=%s", good), requestID, dataID},
		{"header vazio", secret, "", requestID, dataID},
		{"secret vazio", "", fmt.Sprintf("ts=%s,v1=%s", ts, good), requestID, dataID},
		{"header sem formato", secret, "lixo", requestID, dataID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.secret, tc.header, tc.requestID, tc.dataID) {
				t.Fatalf("invalid signature accepted")
			}
		})
	}
}
