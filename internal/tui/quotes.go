package tui

import "math/rand/v2"

type stoicQuote struct {
	text   string
	author string
}

var stoicQuotes = []stoicQuote{
	{"Very little is needed to make a happy life; it is all within yourself, in your way of thinking.", "Marcus Aurelius"},
	{"Waste no more time arguing what a good man should be. Be one.", "Marcus Aurelius"},
	{"We suffer more often in imagination than in reality.", "Seneca"},
	{"Difficulties strengthen the mind, as labor does the body.", "Seneca"},
	{"First say to yourself what you would be; and then do what you have to do.", "Epictetus"},
	{"Happiness and freedom begin with a clear understanding of one principle: Some things are within our control, and some things are not.", "Epictetus"},
	{"If it is not right do not do it; if it is not true do not say it.", "Marcus Aurelius"},
	{"The soul becomes dyed with the color of its thoughts.", "Marcus Aurelius"},
	{"He who is brave is free.", "Seneca"},
	{"Make the best use of what is in your power, and take the rest as it happens.", "Epictetus"},
}

// randomQuote picks the quote shown for the lifetime of one UI run.
func randomQuote() stoicQuote {
	return stoicQuotes[rand.IntN(len(stoicQuotes))]
}

func (q stoicQuote) View(p palette) string {
	return p.status.Render("\""+q.text+"\"") + "\n" + helpStyle.Render("  - "+q.author)
}
