package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/phparray/phparray"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	logger := log.WithFields(log.Fields{"app": "phparray-demo"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.DebugLevel)

	fruits := phparray.New[string](phparray.WithCapacity(4), phparray.WithLogger(logger))
	fruits.Put("apple", "red")
	fruits.Put("banana", "yellow")
	fruits.Put("grape", "purple")
	fruits.Put(42, "green")
	fmt.Println("keys:", fruits.Keys())
	fmt.Println("values:", fruits.Values())

	fruits.Unset("banana")
	fmt.Println("after unset:", fruits)
	must(fruits.Dump(os.Stdout))

	fruits.Reset()
	for p, ok := fruits.Each(); ok; p, ok = fruits.Each() {
		fmt.Println("each:", p)
	}

	flipped, err := fruits.Flip()
	must(err)
	fmt.Println("flipped:", flipped)

	scores := phparray.NewOrdered[int](phparray.WithLogger(logger))
	scores.Put("x", 3)
	scores.Put("y", 1)
	scores.Put("z", 2)
	must(scores.Asort())
	fmt.Println("asort:", scores)
	must(scores.Sort())
	fmt.Println("sort:", scores)
	for v := range scores.Iter() {
		fmt.Println("value:", v)
	}
}
