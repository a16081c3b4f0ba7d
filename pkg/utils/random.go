package utils

import (
	"crypto/rand"
	"math/big"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateRandomString สร้าง random string (0-9a-z) ความยาว n จาก crypto/rand
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	limit := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// fallback ถ้า crypto/rand ใช้ไม่ได้
			result[i] = base36[i%len(base36)]
			continue
		}
		result[i] = base36[num.Int64()]
	}
	return string(result)
}
