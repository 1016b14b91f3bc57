package fireman_test

import (
	"context"
	"fmt"

	"github.com/Subhi2012/fireman"
	"github.com/Subhi2012/fireman/internal/memstore"
	"github.com/Subhi2012/fireman/pkg/lang"
)

// demoParser resolves a handful of fixed queries, standing in for a real
// FQL parser.
var demoParser = lang.ParserFunc(func(query string) ([]lang.Component, error) {
	switch query {
	case "users/tom":
		return []lang.Component{
			lang.Literal{Value: "users"},
			lang.Literal{Value: "tom"},
		}, nil
	case "users{age > 30}":
		return []lang.Component{
			lang.Literal{Value: "users"},
			lang.CollectionExpression{Refinements: []lang.Refinement{
				lang.Where("age", ">", 30),
				lang.Order("age", 1),
			}},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported query %q", query)
	}
})

func newDemoConnector() *memstore.Connector {
	st := memstore.New()
	st.Put("users/tom", map[string]any{"name": "Tom", "age": 41})
	st.Put("users/ann", map[string]any{"name": "Ann", "age": 29})
	st.Put("users/bob", map[string]any{"name": "Bob", "age": 35})

	connector := memstore.NewConnector()
	connector.Add("demo", st)
	return connector
}

func ExampleClient_Query() {
	client, err := fireman.New(demoParser, fireman.StaticProject("demo"), newDemoConnector())
	if err != nil {
		panic(err)
	}
	defer client.Close()

	res, err := client.Query(context.Background(), "users/tom")
	if err != nil {
		panic(err)
	}

	doc, err := res.First()
	if err != nil {
		panic(err)
	}
	fmt.Println(doc.Path, doc.Data["name"])
	// Output: users/tom Tom
}

func ExampleClient_Query_collection() {
	client, err := fireman.New(demoParser, fireman.StaticProject("demo"), newDemoConnector())
	if err != nil {
		panic(err)
	}
	defer client.Close()

	res, err := client.Query(context.Background(), "users{age > 30}")
	if err != nil {
		panic(err)
	}

	for _, doc := range res.Documents {
		fmt.Println(doc.Path, doc.Data["age"])
	}
	// Output:
	// users/bob 35
	// users/tom 41
}
