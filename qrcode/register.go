package qrcode

import qrdecode "github.com/codemasher/go-qrdecode"

func init() {
	qrdecode.RegisterReader(func() qrdecode.Reader {
		return NewReader()
	})
}
