package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	got := Sign("order_1", "pay_1", "s3cr3t")
	assert.Equal(t, "c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f", got)
}

func TestVerifySignature(t *testing.T) {
	secret := "s3cr3t"
	valid := Sign("order_1", "pay_1", secret)

	assert.True(t, VerifySignature("order_1", "pay_1", valid, secret))

	assert.False(t, VerifySignature("order_1", "pay_1", valid, "wrong-secret"))
	assert.False(t, VerifySignature("order_2", "pay_1", valid, secret))
	assert.False(t, VerifySignature("order_1", "pay_2", valid, secret))
	assert.False(t, VerifySignature("order_1", "pay_1", "deadbeef", secret))
	assert.False(t, VerifySignature("order_1", "pay_1", "", secret))
}
