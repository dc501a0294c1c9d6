package openai

import (
	"fmt"

	"github.com/poiesic/yojana/ai"
)

const profileResponseSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "age": {
      "type": ["integer", "null"],
      "minimum": 0,
      "maximum": 150
    },
    "gender": {
      "type": "string",
      "enum": ["male", "female", "all"]
    },
    "language": {
      "type": "string",
      "enum": ["en", "hi", "bho"]
    },
    "state": {
      "type": "string"
    }
  },
  "required": ["age", "gender", "language", "state"],
  "additionalProperties": false
}`

const translationResponseSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id": { "type": "integer", "minimum": 0 },
      "name": { "type": "string" },
      "eligibility": { "type": "string" },
      "benefits": { "type": "string" }
    },
    "required": ["id", "name"],
    "additionalProperties": false
  }
}`

const profilePromptTemplate = `Extract an applicant profile from a query about Indian government welfare schemes and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- age: the applicant's age in whole years if stated, otherwise null. Never guess.
- gender: "male" if the query mentions male/man/boy/husband/पुरुष/लड़का/आदमी, "female" if it mentions female/woman/girl/wife/widow/महिला/लड़की/औरत, otherwise "all".
- language: "en" if the query has no Devanagari characters. "bho" if it is written in Bhojpuri (words such as बा, बानी, हमार, हमनी, रउआ, कवनो, केहू, मिलल, चाहीं). "hi" for other Devanagari text.
- state: the Indian state or union territory the applicant lives in, lowercase English name (e.g. "bihar", "uttar pradesh"). Use "all" if none is mentioned.
- No other keys. No trailing commas. No text outside the object.

Example:
Input: "I am a 45-year-old farmer in Bihar"
Output:
{"age":45,"gender":"all","language":"en","state":"bihar"}

Example:
Input: "मैं 60 साल की विधवा महिला हूँ, उत्तर प्रदेश से"
Output:
{"age":60,"gender":"female","language":"hi","state":"uttar pradesh"}

Example:
Input: "हम 35 बरिस के मरद बानी, हमरा खेती खातिर योजना चाहीं"
Output:
{"age":35,"gender":"male","language":"bho","state":"all"}`

const translationPromptTemplate = `Translate Indian government welfare scheme descriptions into %s.

You receive a JSON array. Each element has "id", "name", "eligibility" and "benefits".
Return ONLY a JSON array with one element per input element, in any order, using exactly these keys:
"id", "name", "eligibility", "benefits".

Rules:
- Copy "id" unchanged from the input element. Never invent ids.
- Translate "name", "eligibility" and "benefits" into %s written in Devanagari script.
- Keep official scheme acronyms (PM-KISAN, PMAY, MUDRA) recognisable.
- Keep numbers, amounts and URLs unchanged.
- Do not add commentary, markdown, or text outside the array.`

// buildProfilePrompt creates the system prompt for profile extraction.
func buildProfilePrompt() string {
	return fmt.Sprintf(profilePromptTemplate, profileResponseSchema)
}

// buildTranslationPrompt creates the system prompt for translating into target.
func buildTranslationPrompt(target string) string {
	name, ok := ai.LanguageNames[target]
	if !ok {
		name = target
	}
	return fmt.Sprintf(translationPromptTemplate, name, name)
}
