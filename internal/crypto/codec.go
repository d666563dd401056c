// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "encoding/base64"

// Base64 is the codec used for every persisted binary value.
var Base64 Codec = base64Codec{}

type base64Codec struct{}

func (base64Codec) Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (base64Codec) Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
