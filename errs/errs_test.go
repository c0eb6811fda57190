// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsWrapMessageAndAreIdentifiable(t *testing.T) {
	err := ErrLex.New("unterminated string")
	assert.Contains(t, err.Error(), "lex error")
	assert.Contains(t, err.Error(), "unterminated string")
	assert.True(t, ErrLex.Is(err))
	assert.False(t, ErrParse.Is(err))
}

func TestKindsAreDistinctFromEachOther(t *testing.T) {
	assert.False(t, ErrBind.Is(ErrEval.New("x")))
	assert.False(t, ErrCatalog.Is(ErrIO.New("x")))
}

func TestKindIsRejectsPlainErrors(t *testing.T) {
	assert.False(t, ErrEval.Is(errors.New("plain")))
}
