// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrNotInteger is returned when an integral-only query (IsEven) is asked of a
// value whose strategy has no integral capability. It signals a type-capability
// violation, not a bad value.
var ErrNotInteger = errors.New("numeric: strategy is not integral")
