// Package person generates placeholder names, email addresses, site URLs and
// ages.
//
//	g := person.New(random.Default(), lexicon.Default())
//
//	name, _ := g.Name()   // "Olivia Parker"
//	email, _ := g.Email() // "olivia.parker@gmail.com"
//	age := g.Age(person.Teen)
package person
