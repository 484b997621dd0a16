/*
Copyright 2026 The Unicore Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"os"

	"unicore.io/unicore/go/cmd/unicore/command"
	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/uerrors"
)

func main() {
	// glog registers its flags on the standard flag set.
	command.Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// hack to get rid of an "ERROR: logging before flag.Parse"
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := command.Root.Execute(); err != nil {
		log.ErrorS("unicore failed", "err", err, "code", uerrors.Code(err))
		log.Flush()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch uerrors.Code(err) {
	case uerrors.InvalidArgument:
		return 2
	case uerrors.DataError, uerrors.NotFound:
		return 3
	}
	return 1
}
