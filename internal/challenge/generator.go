package challenge

// Daily generates the challenge for one (date, difficulty, category)
// triple. The date must be in canonical yyyy-MM-dd form; it is part of the
// seed, so any other shape would silently change the sequence.
//
// One generator instance drives both the question selection and the
// per-question choice shuffles, in that order. The two draws share a single
// stream on purpose: reseeding between them would let a client that skips
// selection (or shuffles choices first) produce a different day.
//
// Fewer candidates than size is not an error: the challenge is simply
// shorter. No candidates yields an empty challenge; callers render an
// empty state.
func Daily(questions []Question, date string, difficulty Difficulty, category string, size int) Challenge {
	ch := Challenge{Date: date, Difficulty: difficulty, Category: category}

	var pool []Question
	for _, q := range questions {
		if q.Difficulty != difficulty {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		pool = append(pool, q)
	}
	if len(pool) == 0 {
		return ch
	}

	rng := NewRNG(Seed(date + string(difficulty) + category))

	// Selection: shuffle the full pool, take the prefix.
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if size > len(pool) {
		size = len(pool)
	}

	// Choice order: reshuffle each selected question from the same stream.
	for _, q := range pool[:size] {
		ch.Entries = append(ch.Entries, shuffleChoices(q, rng))
	}
	return ch
}

// QuestionOfTheDay picks the dashboard's single featured question for a
// date: dayOfYear mod question count, with choices shuffled from a seed of
// the date and the question id. This is a deliberately simpler rule than
// Daily and the two must not be unified.
func QuestionOfTheDay(questions []Question, date string, dayOfYear int) (Entry, bool) {
	if len(questions) == 0 {
		return Entry{}, false
	}
	q := questions[dayOfYear%len(questions)]
	rng := NewRNG(Seed(date + q.ID))
	return shuffleChoices(q, rng), true
}

// shuffleChoices builds an Entry with the question's choices permuted by
// rng and the answer index remapped to follow the correct choice.
func shuffleChoices(q Question, rng *RNG) Entry {
	e := Entry{
		Question: q,
		Choices:  make([]string, len(q.Choices)),
		Answer:   q.Answer,
	}
	copy(e.Choices, q.Choices)
	if len(e.Choices) == 0 {
		return e
	}
	rng.Shuffle(len(e.Choices), func(i, j int) {
		e.Choices[i], e.Choices[j] = e.Choices[j], e.Choices[i]
		switch e.Answer {
		case i:
			e.Answer = j
		case j:
			e.Answer = i
		}
	})
	return e
}
