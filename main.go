// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package main

import "github.com/shamo33/cryptor/cmd"

func main() {
	cmd.Execute()
}
