/*
Copyright © 2022 - 2025 SUSE LLC

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

package cmd

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
)

func TestSendCmdEncodesToStdout(t *testing.T) {
	RegisterTestingT(t)
	dir := writeFixtureTree(t)

	cmd := NewRootCmd()
	NewSendCmd(cmd)
	_, out, err := executeCommandC(cmd, "send", dir)
	Expect(err).NotTo(HaveOccurred())
	Expect(out).NotTo(BeEmpty())
}

func TestRecvCmdDecodesSendOutput(t *testing.T) {
	RegisterTestingT(t)
	dir := writeFixtureTree(t)

	sendCmd := NewRootCmd()
	NewSendCmd(sendCmd)
	_, encoded, err := executeCommandC(sendCmd, "send", dir)
	Expect(err).NotTo(HaveOccurred())

	recvRoot := NewRootCmd()
	recvCmd := NewRecvCmd(recvRoot)
	recvCmd.SetIn(bytes.NewBufferString(encoded))
	_, out, err := executeCommandC(recvRoot, "recv")
	Expect(err).NotTo(HaveOccurred())
	Expect(out).To(ContainSubstring("keep.txt"))
}
