package bank

func defaultPrefixes() []string {
	return []string{"get", "go", "try", "use", "my", "pro", "up", "on", "meta", "omni", "neo", "ever"}
}

func defaultSuffixes() []string {
	return []string{"ly", "ify", "hub", "base", "kit", "lab", "stack", "deck", "grid", "sync", "scope", "flow"}
}

func defaultLetters() []string {
	return []string{"q", "v", "x", "z", "k"}
}

func defaultTiers() []string {
	return []string{"starter", "basic", "plus", "pro", "premium", "team", "business", "enterprise", "ultimate"}
}

func defaultCategories() map[string]Category {
	return map[string]Category{
		"projectManagement": {
			Words: []string{"task", "plan", "sprint", "board", "track", "team", "goal", "milestone", "agenda", "scope", "flow", "sync"},
			Verbs: []string{"plan", "track", "ship", "align", "deliver", "organize"},
		},
		"analytics": {
			Words: []string{"data", "metric", "insight", "graph", "chart", "signal", "trend", "pulse", "lens", "query"},
			Verbs: []string{"measure", "reveal", "predict", "chart", "explore"},
		},
		"communication": {
			Words: []string{"chat", "talk", "message", "voice", "mail", "ping", "loop", "thread", "relay"},
			Verbs: []string{"connect", "reply", "share", "broadcast"},
		},
		"finance": {
			Words: []string{"pay", "ledger", "invoice", "budget", "fund", "vault", "bill", "coin", "balance"},
			Verbs: []string{"pay", "save", "invest", "settle"},
		},
		"marketing": {
			Words: []string{"brand", "reach", "buzz", "funnel", "growth", "campaign", "audience", "story"},
			Verbs: []string{"grow", "launch", "promote", "engage"},
		},
		"developer": {
			Words: []string{"code", "build", "deploy", "stack", "commit", "shell", "byte", "script", "branch"},
			Verbs: []string{"build", "ship", "debug", "deploy"},
		},
		"general": {
			Words: []string{"spark", "forge", "nova", "peak", "shift", "craft", "wave", "core", "orbit", "atlas"},
			Verbs: []string{"start", "create", "launch", "scale"},
		},
	}
}
