package llm

const (
	humanTurn     = "\n\nHuman:"
	assistantTurn = "\n\nAssistant:"
)

const headlineInstruction = `I am going to provide you with the full text of a news article. Your task is twofold:

1. Headline Generation: Create a concise, engaging, and accurate headline that captures the main idea or essence of the article. The headline should be no more than 10-12 words and should be suitable for a general audience. If the article has a tone, such as informative, inspiring, or urgent, try to reflect that in the headline as well.

2. Sentiment Analysis: Analyze the overall sentiment of the article and classify it as either positive, negative, or neutral. Additionally, provide a brief explanation for your sentiment classification.

Format your answer as:
Headline: <headline on a single line>
Sentiment: <classification and explanation>

Here is the article:`

const summaryInstruction = `I am going to provide you with the topic or a brief description of a news article. Your task is to:

1. Summary Generation: Write a concise, clear, and accurate summary of the article in EXACTLY 8-9 lines. The summary should include key points, cover the main aspects of the topic, and provide essential details. Maintain a neutral tone and avoid overly technical or verbose language. Ensure the summary is easy to understand and captures the essence of the article.

2. Sentiment Analysis: Analyze the overall sentiment of the topic and classify it as positive, negative, or neutral. Provide a brief explanation for your sentiment classification.

Format your answer as:
Summary: <summary>
Sentiment: <classification and explanation>

Here is the topic or description:`

func instructionFor(mode Mode) string {
	if mode == ModeSummary {
		return summaryInstruction
	}
	return headlineInstruction
}

// userPrompt is the instruction block followed by the article text.
func userPrompt(article string, mode Mode) string {
	return instructionFor(mode) + " " + article
}

// conversationPrompt wraps the user prompt in Human/Assistant turns for completion style models.
func conversationPrompt(article string, mode Mode) string {
	return humanTurn + userPrompt(article, mode) + assistantTurn
}
