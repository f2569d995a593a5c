package textsig

// stopwords merges general English stopwords with the web/UI vocabulary
// that dominates scraped page chrome: navigation labels, social-engagement
// verbs and time words. Tokens shorter than minTokenLen never reach the
// lookup, but short entries are kept so the table stays recognizable as a
// standard list.
var stopwords = map[string]struct{}{
	// General English.
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "he": {}, "her": {}, "here": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {}, "just": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"myself": {}, "no": {}, "nor": {}, "not": {}, "now": {}, "of": {},
	"off": {}, "on": {}, "once": {}, "only": {}, "or": {}, "other": {},
	"our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {}, "own": {},
	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "very": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {}, "who": {},
	"whom": {}, "why": {}, "with": {}, "would": {}, "you": {}, "your": {},
	"yours": {}, "yourself": {}, "yourselves": {},

	// Navigation chrome.
	"home": {}, "menu": {}, "page": {}, "pages": {}, "next": {}, "previous": {},
	"back": {}, "skip": {}, "search": {}, "browse": {}, "click": {},
	"login": {}, "logout": {}, "signin": {}, "signup": {}, "register": {},
	"account": {}, "settings": {}, "help": {}, "contact": {}, "cookie": {},
	"cookies": {}, "privacy": {}, "policy": {}, "terms": {}, "copyright": {},
	"read": {}, "learn": {}, "view": {}, "show": {}, "hide": {}, "open": {},
	"close": {}, "download": {}, "loading": {}, "content": {}, "main": {},
	"navigation": {}, "sidebar": {}, "footer": {}, "header": {},

	// Social engagement.
	"share": {}, "like": {}, "likes": {}, "comment": {}, "comments": {},
	"reply": {}, "replies": {}, "follow": {}, "followers": {}, "following": {},
	"subscribe": {}, "subscribers": {}, "upvote": {}, "views": {},
	"trending": {}, "posted": {}, "tweet": {}, "retweet": {},

	// Time words.
	"today": {}, "yesterday": {}, "tomorrow": {}, "week": {}, "weeks": {},
	"month": {}, "months": {}, "year": {}, "years": {}, "day": {}, "days": {},
	"hour": {}, "hours": {}, "minute": {}, "minutes": {}, "second": {},
	"seconds": {}, "ago": {}, "monday": {}, "tuesday": {}, "wednesday": {},
	"thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"january": {}, "february": {}, "march": {}, "april": {}, "june": {},
	"july": {}, "august": {}, "september": {}, "october": {}, "november": {},
	"december": {},
}
