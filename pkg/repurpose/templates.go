package repurpose

// PromptVersion is stored alongside results so output can be traced back
// to the prompt revision that produced it.
const PromptVersion = "v1"

const blogSystemPrompt = `You are an expert content writer.`

const blogPromptTemplate = `Your task is to transform the given original content into a blog post.

Original Content:
"{{.original_content}}"

Target Audience: {{.target_audience}}
Tone: {{.tone}}
Desired Length: {{.length}} words (approximate)

Please write a compelling and well-structured blog post based on the above. Ensure it flows naturally and engages the specified audience. Include an introduction, main body with relevant points, and a conclusion.`

const tweetSystemPrompt = `You are a social media expert.`

const tweetPromptTemplate = `Your task is to convert the following content into a thread of 3-5 concise tweets. Each tweet must be under 280 characters. Use relevant hashtags and emojis where appropriate to maximize engagement.

Original Content:
"{{.original_content}}"

Tone: {{.tone}}

Output as JSON only, no other text:
{
  "tweets": ["first tweet", "second tweet", "third tweet"]
}`

const carouselSystemPrompt = `You are an Instagram content creator.`

const carouselPromptTemplate = `Your task is to generate text for an Instagram carousel post based on the given content. The carousel should have {{.num_slides}} slides.

For each slide, provide:
- A concise, engaging headline/title.
- 2-3 bullet points or short sentences summarizing a key idea.
- Relevant emojis.
- A call to action for the last slide.

Original Content:
"{{.original_content}}"

Tone: {{.tone}}

Please format the output clearly, indicating each slide.
Example format:
--- Slide 1 ---
Headline: [Headline]
- Point 1
- Point 2
✨ Emoji

--- Slide 2 ---
Headline: [Headline]
- Point 1
- Point 2
🚀 Emoji
...`
