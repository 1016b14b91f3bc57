package fireman_test

import (
	"context"
	"fmt"

	"github.com/Subhi2012/fireman"
	"github.com/Subhi2012/fireman/internal/memstore"
	"github.com/Subhi2012/fireman/pkg/lang"
)

func ExampleClient_Live() {
	st := memstore.New()
	st.Put("rooms/lobby", map[string]any{"topic": "hello"})

	connector := memstore.NewConnector()
	connector.Add("demo", st)

	parser := lang.ParserFunc(func(string) ([]lang.Component, error) {
		return []lang.Component{
			lang.Literal{Value: "rooms"},
			lang.Literal{Value: "lobby"},
		}, nil
	})

	client, err := fireman.New(parser, fireman.StaticProject("demo"), connector)
	if err != nil {
		panic(err)
	}
	defer client.Close()

	sub, err := client.Live(context.Background(), "rooms/lobby")
	if err != nil {
		panic(err)
	}
	defer sub.Cancel()

	st.Put("rooms/lobby", map[string]any{"topic": "updated"})

	for i := 0; i < 2; i++ {
		update := <-sub.Updates()
		if update.Err != nil {
			panic(update.Err)
		}
		doc, err := update.Result.First()
		if err != nil {
			panic(err)
		}
		fmt.Println(doc.Data["topic"])
	}
	// Output:
	// hello
	// updated
}
