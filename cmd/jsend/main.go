/*
   Copyright 2025 The DIRPX Authors

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

// Command jsend validates, normalizes and forwards jsend envelopes read as
// JSON documents from files or standard input.
//
//	jsend validate --strict responses.json
//	echo '{"error": "boom"}' | jsend normalize
//	echo '{"status": "fail", "data": {"id": "required"}}' | jsend forward
package main

import (
	"context"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("jsend")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}
