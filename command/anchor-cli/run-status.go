// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/credano/anchord/status"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type entry struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}

	list := make([]entry, 0, status.Count)
	for st := status.First; st <= status.Last; st += 1 {
		code, err := st.Code()
		if nil != err {
			return err
		}
		list = append(list, entry{
			Name: st.String(),
			Code: code,
		})
	}
	return printJson(m.w, list)
}
