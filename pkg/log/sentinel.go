// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "strings"

// UserErrorSentinel is appended to the message of every error created
// by the user logger. It is made of zero width spaces, so it does not
// show up in rendered messages, and it survives conversion of the
// error to a plain string.
const UserErrorSentinel = "\u200B\u200B\u200B"

// IsUserErrorMessage reports whether message belongs
// to an error created by the user logger.
func IsUserErrorMessage(message string) bool {
	return strings.Contains(message, UserErrorSentinel)
}

// IsUserError reports whether the message of err carries the user error sentinel.
func IsUserError(err error) bool {
	return err != nil && IsUserErrorMessage(err.Error())
}
