// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"path/filepath"
)

func localPath(workDir string) string {
	return filepath.Join(workDir, ".csvt.yaml")
}
