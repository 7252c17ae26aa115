// message.go - read a message from the terminal
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of shakebytes, using the creative
// commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package util

import (
	"fmt"
	"io"

	"github.com/nogoegst/terminal"
	"github.com/pkg/errors"
)

// ReadMessage prompts on prompt and reads one line from the terminal fd
// without echoing it.
func ReadMessage(fd int, prompt io.Writer) (string, error) {
	fmt.Fprintf(prompt, "Enter message: ")
	msg, err := terminal.ReadPassword(fd)
	fmt.Fprintf(prompt, "\n")
	if err != nil {
		return "", errors.Wrap(err, "unable to read message")
	}
	return string(msg), nil
}
