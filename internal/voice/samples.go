package voice

// SampleTranscripts is the fixed menu of example sentences offered when live
// recording is unavailable (web builds, denied microphone permission). Each
// one exercises a different amount pattern and category.
func SampleTranscripts() []string {
	return []string{
		"I spent 250 rupees on lunch",
		"Earned 5000 from freelance project",
		"Paid 1500 for phone bill",
		"Bought groceries for 800 rupees",
		"Received salary of 45000",
	}
}
