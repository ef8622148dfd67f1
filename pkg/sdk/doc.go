// Package strindex embeds the strindex string analysis store in a Go process.
//
// Every stored string is trimmed, analyzed once and addressed by the SHA-256
// of its content, so storing the same text twice fails with ErrAlreadyExists.
//
//	client, _ := strindex.New(strindex.WithPrometheus(prometheus.DefaultRegisterer))
//	s, _ := client.Create(ctx, "racecar")
//	fmt.Println(s.Properties.IsPalindrome) // true
//
//	long, _ := client.List(ctx, strindex.Filters{MinLength: strindex.Ptr(5)})
//	in, hits, _ := client.Search(ctx, "single word palindromic strings")
//
// The store lives in memory for the lifetime of the Client.
package strindex
