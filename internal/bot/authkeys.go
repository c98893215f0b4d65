package bot

import (
	"math/rand"
	"strings"
)

// authKeyResponse resolves a server auth challenge against the compiled-in
// key table.
func authKeyResponse(challenge string) (string, bool) {
	for i := range authKeyTable {
		if authKeyTable[i][0] == challenge {
			return authKeyTable[i][1], true
		}
	}
	return "", false
}

// genGPCI fabricates a hardware serial in the format the join RPC expects.
func genGPCI() string {
	const hexDigits = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(41)
	sb.WriteByte('4')
	for i := 0; i < 40; i++ {
		sb.WriteByte(hexDigits[rand.Intn(len(hexDigits))])
	}
	return sb.String()
}
