package msgfilter_test

import (
	"context"
	"log"
	"os"
	"strings"

	msgfilter "github.com/fardream/gitrim-msgfilter"
)

func FilterPanic(err error) {
	if err != nil {
		log.Panic(err)
	}
}

func ExampleFilter() {
	table := msgfilter.DefaultTable()

	// garbled message of a commit with a known replacement
	_, err := msgfilter.Filter(context.Background(), table, "a933afd78868342c29edad1b8a185f75c7f16829", strings.NewReader("docs: \x8aJ\x94\xad\x83\x81\x83\x82\n"), os.Stdout)
	FilterPanic(err)

	// any other commit is copied through
	_, err = msgfilter.Filter(context.Background(), table, "3f1b2c9d8e7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c", strings.NewReader("fix: typo\n"), os.Stdout)
	FilterPanic(err)

	// Output:
	// docs: 開発メモを更新
	// fix: typo
}
