/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	// SHA-256 of "test".
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", HashString("test"))
	assert.Equal(t, HashString("abc"), Hash([]byte("abc")))
}

func TestHashPartsIsDeterministic(t *testing.T) {
	assert.Equal(t, HashParts("op1", "CONTINUE"), HashParts("op1", "CONTINUE"))
	assert.NotEqual(t, HashParts("op1", "CONTINUE"), HashParts("op1", "DONE"))
}

func TestHashPartsSeparatesParts(t *testing.T) {
	assert.NotEqual(t, HashParts("ab", "c"), HashParts("a", "bc"))
	assert.NotEqual(t, HashParts("", "x"), HashParts("x", ""))
}

func TestLengthPrefix(t *testing.T) {
	assert.Equal(t, "0:", lengthPrefix(0))
	assert.Equal(t, "7:", lengthPrefix(7))
	assert.Equal(t, "256:", lengthPrefix(256))
}
