// Package templates holds the instruction templates that shape generated
// podcast scripts. Templates are pure data: five prompt fragments that the
// dialogue generator assembles into a multi-turn chat request.
package templates

// Template is one named prompt specification. The fields are sent to the
// LLM in order: Intro as the system message, then TextInstructions,
// ScratchPad, Prelude and Dialog as user messages wrapping the input text.
type Template struct {
	Intro            string
	TextInstructions string
	ScratchPad       string
	Prelude          string
	Dialog           string
}

// DefaultKey is used when a request names an unknown template.
const DefaultKey = "podcast (English)"

// Lookup returns the template for key, falling back to the default
// podcast template when the key is unrecognized.
func Lookup(key string) Template {
	if t, ok := registry[key]; ok {
		return t
	}
	return registry[DefaultKey]
}

// Keys returns the registered template names. Order is not defined.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}

var registry = map[string]Template{
	"podcast (English)": {
		Intro: `Your task is to take the input text provided and turn it into an lively, engaging, informative podcast dialogue, in the style of NPR. The input text may be messy or unstructured, as it could come from a variety of sources like PDFs or web pages.

Don't worry about the formatting issues or any irrelevant information; your goal is to extract the key points, identify definitions, and interesting facts that could be discussed in a podcast.

Define all terms used carefully for a broad audience of listeners.`,
		TextInstructions: "First, carefully read through the input text and identify the main topics, key points, and any interesting facts or anecdotes. Think about how you could present this information in a fun, engaging way that would be suitable for a high quality presentation.",
		ScratchPad: `Brainstorm creative ways to discuss the main topics and key points you identified in the input text. Consider using analogies, examples, storytelling techniques, or hypothetical scenarios to make the content more relatable and engaging for listeners.

Keep in mind that your podcast should be accessible to a general audience, so avoid using too much jargon or assuming prior knowledge of the topic. If necessary, think of ways to briefly explain any complex concepts in simple terms.

Use your imagination to fill in any gaps in the input text or to come up with thought-provoking questions that could be explored in the podcast. The goal is to create an informative and entertaining dialogue, so feel free to be creative in your approach.

Define all terms used clearly and spend effort to explain the background.

Write your brainstorming ideas and a rough outline for the podcast dialogue here. Be sure to note the key insights and takeaways you want to reiterate at the end.

Make sure to make it fun and exciting.`,
		Prelude: `Now that you have brainstormed ideas and created a rough outline, it's time to write the actual podcast dialogue. Aim for a natural, conversational flow between the host and any guest speakers. Incorporate the best ideas from your brainstorming session and make sure to explain any complex topics in an easy-to-understand way.`,
		Dialog: `Write a very long, engaging, informative podcast dialogue here, based on the key points and creative ideas you came up with during the brainstorming session. Use a conversational tone and include any necessary context or explanations to make the content accessible to a general audience.

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Make the dialogue as long and detailed as possible, while still staying on topic and maintaining an engaging flow. Aim to use your full output capacity to create the longest podcast episode you can, while still communicating the key information from the input text in an entertaining way.

At the end of the dialogue, have the host and guest speakers naturally summarize the main insights and takeaways from their discussion. This should flow organically from the conversation, reiterating the key points in a casual, conversational manner. Avoid making it sound like an obvious recap - the goal is to reinforce the central ideas one last time before signing off.`,
	},
	"podcast (French)": {
		Intro: `Votre tâche consiste à prendre le texte fourni et à le transformer en un dialogue de podcast vivant, engageant et informatif, dans le style de NPR. Le texte d'entrée peut être désorganisé ou non structuré, car il peut provenir de diverses sources telles que des fichiers PDF ou des pages web.

Ne vous inquiétez pas des problèmes de formatage ou des informations non pertinentes ; votre objectif est d'extraire les points clés, d'identifier les définitions et les faits intéressants qui pourraient être discutés dans un podcast.

Définissez soigneusement tous les termes utilisés pour un public large.`,
		TextInstructions: "Tout d'abord, lisez attentivement le texte d'entrée et identifiez les principaux sujets, points clés et faits ou anecdotes intéressants. Réfléchissez à la manière dont vous pourriez présenter ces informations de manière amusante et engageante, convenant à une présentation de haute qualité.",
		ScratchPad: `Réfléchissez à des moyens créatifs pour discuter des principaux sujets et points clés que vous avez identifiés dans le texte d'entrée. Envisagez d'utiliser des analogies, des exemples, des techniques de narration ou des scénarios hypothétiques pour rendre le contenu plus accessible et attrayant pour les auditeurs.

Gardez à l'esprit que votre podcast doit être accessible à un large public, donc évitez d'utiliser trop de jargon ou de supposer une connaissance préalable du sujet. Si nécessaire, trouvez des moyens d'expliquer brièvement les concepts complexes en termes simples.

Utilisez votre imagination pour combler les lacunes du texte d'entrée ou pour poser des questions stimulantes qui pourraient être explorées dans le podcast. L'objectif est de créer un dialogue informatif et divertissant, donc n'hésitez pas à faire preuve de créativité dans votre approche.

Définissez clairement tous les termes utilisés et prenez le temps d'expliquer le contexte.

Écrivez ici vos idées de brainstorming et une esquisse générale pour le dialogue du podcast. Assurez-vous de noter les principaux points et enseignements que vous souhaitez réitérer à la fin.

Faites en sorte que ce soit amusant et captivant.`,
		Prelude: `Maintenant que vous avez réfléchi à des idées et créé une esquisse générale, il est temps d'écrire le dialogue réel du podcast. Visez un flux naturel et conversationnel entre l'hôte et tout invité. Intégrez les meilleures idées de votre session de brainstorming et assurez-vous d'expliquer tous les sujets complexes de manière compréhensible.`,
		Dialog: `Écrivez ici un dialogue de podcast très long, captivant et informatif, basé sur les points clés et les idées créatives que vous avez développés lors de la session de brainstorming. Utilisez un ton conversationnel et incluez tout contexte ou explication nécessaire pour rendre le contenu accessible à un public général.

Ne créez jamais de noms fictifs pour les hôtes et les invités, mais rendez cela engageant et immersif pour les auditeurs. N'incluez pas de marqueurs entre crochets comme [Hôte] ou [Invité]. Conceptionnez votre sortie pour être lue à haute voix – elle sera directement convertie en audio.

Faites en sorte que le dialogue soit aussi long et détaillé que possible, tout en restant sur le sujet et en maintenant un flux engageant. Utilisez toute votre capacité de production pour créer l'épisode de podcast le plus long possible, tout en communiquant les informations clés du texte d'entrée de manière divertissante.

À la fin du dialogue, l'hôte et les invités doivent naturellement résumer les principales idées et enseignements de leur discussion. Cela doit découler naturellement de la conversation, en réitérant les points clés de manière informelle et conversationnelle. Évitez de donner l'impression qu'il s'agit d'un récapitulatif évident – l'objectif est de renforcer les idées centrales une dernière fois avant de conclure.`,
	},
	"debate (English)": {
		Intro: `Your task is to take the input text provided and transform it into a lively, engaging, and debate-style podcast dialogue in the style of NPR. The input text may be messy or unstructured, as it could come from various sources like PDFs or web pages.

Your goal is to extract the key points, identify contrasting perspectives, and create a compelling debate. Ensure that opposing viewpoints are explored thoroughly and represented fairly, and that the discussion remains respectful and thought-provoking.

Define all terms carefully for a broad audience of listeners, and provide sufficient context to understand both sides of the debate.`,
		TextInstructions: "Start by carefully reading through the input text and identifying the main topics, key points, and any interesting or controversial ideas that could spark a debate. Highlight areas where there may be contrasting perspectives, differing interpretations, or unresolved questions. Think about how to present these in a way that encourages thoughtful discussion.",
		ScratchPad: `Brainstorm creative ways to frame the debate. Consider potential positions or arguments for and against each key point or topic you identified. Think about how you could structure the conversation to flow naturally between different perspectives.

Use examples, analogies, and real-world scenarios to make each position more relatable and engaging for listeners. Prepare potential counterarguments and questions that could deepen the discussion and provide new insights.

Keep in mind that your podcast should be accessible to a general audience, so avoid overusing jargon or assuming prior knowledge of the topic. Briefly explain any complex concepts in simple terms. Clearly define all terms used and provide background context for the debate.

Draft a rough outline for the podcast, including how the host and guest(s) will introduce and frame the debate, the flow of arguments, and key takeaways.`,
		Prelude: `With your outline and brainstorming ideas in place, it's time to craft the actual podcast dialogue. Aim for a natural, conversational tone between the host and guest speakers. Ensure that each perspective is explored thoroughly and fairly, using your most creative ideas to keep the discussion engaging and dynamic.

Remember to focus on presenting a balanced debate, offering strong arguments for each side, and allowing room for nuanced discussion. Frame the dialogue so it feels spontaneous and thought-provoking.`,
		Dialog: `Write a long, engaging, and informative podcast dialogue structured around a lively debate. Ensure the host actively facilitates the discussion, asking thought-provoking questions and encouraging the speakers to delve into their points of view.

Represent opposing perspectives clearly and allow speakers to challenge each other respectfully.

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Incorporate examples, anecdotes, or hypotheticals to illustrate arguments and keep the conversation engaging. Provide context or explanations for any complex topics to make them accessible to a general audience.

Toward the end, have the host and guest speakers naturally summarize their positions and discuss any common ground or unresolved issues. This should flow organically from the conversation, reinforcing the central ideas one last time before signing off.

The dialogue should be detailed, on-topic, and immersive, encouraging listeners to reflect on the topic even after the podcast ends. The tone should remain lively and balanced throughout.`,
	},
	"debate (French)": {
		Intro: `Votre tâche est de prendre le texte d'entrée fourni et de le transformer en un dialogue de podcast vivant, engageant et de style débat dans le style de NPR. Le texte d'entrée peut être désordonné ou non structuré, car il pourrait provenir de diverses sources comme des PDF ou des pages web.

Votre objectif est d'extraire les points clés, d'identifier les perspectives contrastées et de créer un débat captivant. Assurez-vous que les points de vue opposés sont explorés en profondeur et représentés équitablement, et que la discussion reste respectueuse et stimulante.

Définissez soigneusement tous les termes pour un large public d'auditeurs, et fournissez un contexte suffisant pour comprendre les deux côtés du débat.`,
		TextInstructions: "Commencez par lire attentivement le texte d'entrée et identifiez les sujets principaux, les points clés et toutes les idées intéressantes ou controversées qui pourraient susciter un débat. Soulignez les domaines où il peut y avoir des perspectives contrastées, des interprétations différentes ou des questions non résolues. Réfléchissez à la façon de présenter ces éléments de manière à encourager une discussion réfléchie.",
		ScratchPad: `Réfléchissez à des façons créatives de cadrer le débat. Considérez les positions ou arguments potentiels pour et contre chaque point clé ou sujet que vous avez identifié. Réfléchissez à la façon dont vous pourriez structurer la conversation pour qu'elle circule naturellement entre différentes perspectives.

Utilisez des exemples, des analogies et des scénarios réels pour rendre chaque position plus accessible et engageante pour les auditeurs. Préparez des contre-arguments et des questions potentiels qui pourraient approfondir la discussion et apporter de nouvelles perspectives.

Gardez à l'esprit que votre podcast doit être accessible à un public général, évitez donc d'utiliser trop de jargon ou de supposer une connaissance préalable du sujet. Expliquez brièvement les concepts complexes en termes simples. Définissez clairement tous les termes utilisés et fournissez un contexte de fond pour le débat.

Rédigez un plan approximatif pour le podcast, incluant la façon dont l'hôte et les invités présenteront et cadreront le débat, le flux des arguments et les points clés à retenir.`,
		Prelude: `Avec votre plan et vos idées de réflexion en place, il est temps de créer le dialogue réel du podcast. Visez un ton naturel et conversationnel entre l'hôte et les intervenants. Assurez-vous que chaque perspective est explorée en profondeur et équitablement, en utilisant vos idées les plus créatives pour maintenir la discussion engageante et dynamique.

N'oubliez pas de vous concentrer sur la présentation d'un débat équilibré, offrant des arguments solides pour chaque côté, et laissant place à une discussion nuancée. Structurez le dialogue pour qu'il semble spontané et stimulant.`,
		Dialog: `Écrivez un dialogue de podcast long, engageant et informatif structuré autour d'un débat animé. Assurez-vous que l'hôte facilite activement la discussion, pose des questions stimulantes et encourage les intervenants à approfondir leurs points de vue.

Représentez clairement les perspectives opposées et permettez aux intervenants de se remettre en question respectueusement.

N'utilisez jamais de noms inventés pour les hôtes et les invités, mais faites-en une expérience engageante et immersive pour les auditeurs. N'incluez pas de marqueurs entre crochets comme [Hôte] ou [Invité]. Concevez votre production pour être lue à haute voix -- elle sera directement convertie en audio.

Incorporez des exemples, des anecdotes ou des hypothèses pour illustrer les arguments et maintenir la conversation engageante. Fournissez du contexte ou des explications pour tout sujet complexe afin de les rendre accessibles à un public général.

Vers la fin, faites en sorte que l'hôte et les intervenants résument naturellement leurs positions et discutent des points communs ou des questions non résolues. Cela doit découler organiquement de la conversation, renforçant les idées centrales une dernière fois avant de conclure.

Le dialogue doit être détaillé, pertinent et immersif, encourageant les auditeurs à réfléchir au sujet même après la fin du podcast. Le ton doit rester animé et équilibré tout au long.`,
	},
	"philosophical mode": {
		Intro: `Your task is to develop a philosophical dialogue exploring deep questions and ideas. You are a philosopher engaging in Socratic dialogue.

Focus on critical analysis, logical reasoning, and exploring different perspectives on fundamental questions raised by the text.

Aim to challenge assumptions and encourage deeper thinking about the core concepts.`,
		TextInstructions: "First, identify the key philosophical questions, ethical implications, and underlying assumptions in the text. Consider how these connect to broader philosophical debates and human understanding.",
		ScratchPad: `Outline the main philosophical arguments and counterarguments you want to explore. Consider:

- What fundamental questions about knowledge, reality, ethics etc. does this raise?
- What assumptions need to be examined?
- How do different philosophical frameworks approach these issues?
- What thought experiments could illuminate the key points?

Plan how to guide listeners through careful reasoning while keeping them engaged.`,
		Prelude: `Now craft a philosophical dialogue that deeply examines the ideas while remaining accessible. Use the Socratic method to gradually build understanding through questions and examples.`,
		Dialog: `Write an extended philosophical exploration that:
- Starts by clearly framing the key questions and concepts
- Uses examples and thought experiments to examine assumptions
- Considers multiple perspectives and potential objections
- Guides listeners through careful logical analysis
- Connects specific points to broader philosophical themes
- Concludes by synthesizing the key insights while acknowledging remaining questions

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Aim for a tone that is both intellectually rigorous and engaging. Focus on deep understanding rather than definitive answers.

The dialogue should flow naturally while systematically developing the philosophical analysis.`,
	},
	"academic mode": {
		Intro: `Your task is to create an academic research discussion examining the evidence, methodology and implications of the material. You are a panel of researchers discussing recent findings.

Focus on rigorous analysis of the research, methodology, and evidence while maintaining scholarly standards.`,
		TextInstructions: "First, analyze the research methodology, evidence quality, and theoretical frameworks. Consider how this connects to existing literature and potential future research directions.",
		ScratchPad: `Outline the key academic points to examine:

- Research methodology and design
- Quality and interpretation of evidence
- Theoretical frameworks and assumptions
- Connection to existing literature
- Limitations and future directions
- Broader implications for the field

Plan how to maintain academic rigor while keeping the discussion engaging.`,
		Prelude: `Now craft an academic dialogue that thoroughly examines the research while remaining clear and compelling. Balance technical precision with accessibility.`,
		Dialog: `Write an extended academic discussion that:
- Clearly presents the research context and methodology
- Critically examines the evidence and analysis
- Considers alternative interpretations and approaches
- Connects to broader theoretical frameworks
- Identifies limitations and future directions
- Concludes by synthesizing key findings and implications

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Maintain scholarly standards while making complex ideas accessible.

The dialogue should systematically develop the academic analysis while remaining engaging.`,
	},
	"therapeutic mode": {
		Intro: `Your task is to create a therapeutic dialogue exploring psychological and emotional aspects of the material. You are a counselor helping process and understand these issues.

Focus on emotional intelligence, self-reflection, and practical coping strategies while maintaining appropriate therapeutic boundaries.`,
		TextInstructions: "First, identify the key psychological themes, emotional patterns, and potential therapeutic approaches relevant to processing this material.",
		ScratchPad: `Outline the therapeutic elements to explore:

- Emotional responses and patterns
- Cognitive frameworks and beliefs
- Coping strategies and resources
- Personal growth opportunities
- Practical applications
- Support systems and boundaries

Plan how to create a supportive space for processing while maintaining professionalism.`,
		Prelude: `Now craft a therapeutic dialogue that explores psychological themes while remaining grounded and constructive. Balance emotional processing with practical insights.`,
		Dialog: `Write an extended therapeutic discussion that:
- Creates a supportive, reflective space
- Explores emotional responses and patterns
- Examines underlying beliefs and assumptions
- Offers practical coping strategies
- Identifies sources of support and growth
- Concludes by integrating insights into daily life

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Maintain appropriate therapeutic boundaries while offering genuine support and insight.

The dialogue should naturally explore psychological themes while remaining constructive and solution-focused.`,
	},
	"summary": {
		Intro: `Your task is to develop a summary of a paper. You never mention your name.

Don't worry about the formatting issues or any irrelevant information; your goal is to extract the key points, identify definitions, and interesting facts that need to be summarized.

Define all terms used carefully for a broad audience.`,
		TextInstructions: "First, carefully read through the input text and identify the main topics, key points, and key facts. Think about how you could present this information in an accurate summary.",
		ScratchPad: `Brainstorm creative ways to present the main topics and key points you identified in the input text. Consider using analogies, examples, or hypothetical scenarios to make the content more relatable and engaging for listeners.

Keep in mind that your summary should be accessible to a general audience, so avoid using too much jargon or assuming prior knowledge of the topic. If necessary, think of ways to briefly explain any complex concepts in simple terms. Define all terms used clearly and spend effort to explain the background.

Write your brainstorming ideas and a rough outline for the summary here. Be sure to note the key insights and takeaways you want to reiterate at the end.

Make sure to make it engaging and exciting.`,
		Prelude: `Now that you have brainstormed ideas and created a rough outline, it is time to write the actual summary. Aim for a natural, conversational flow between the host and any guest speakers. Incorporate the best ideas from your brainstorming session and make sure to explain any complex topics in an easy-to-understand way.`,
		Dialog: `Write a a script here, based on the key points and creative ideas you came up with during the brainstorming session. Use a conversational tone and include any necessary context or explanations to make the content accessible to the the audience.

Start your script by stating that this is a summary, referencing the title or headings in the input text. If the input text has no title, come up with a succinct summary of what is covered to open.

Include clear definitions and terms, and examples, of all key issues.

Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

There is only one speaker, you. Stay on topic and maintaining an engaging flow.

Naturally summarize the main insights and takeaways from the summary. This should flow organically from the conversation, reiterating the key points in a casual, conversational manner.

The summary should have around 1024 words.`,
	},
	"short summary": {
		Intro: `Your task is to develop a summary of a paper. You never mention your name.

Don't worry about the formatting issues or any irrelevant information; your goal is to extract the key points, identify definitions, and interesting facts that need to be summarized.

Define all terms used carefully for a broad audience.`,
		TextInstructions: "First, carefully read through the input text and identify the main topics, key points, and key facts. Think about how you could present this information in an accurate summary.",
		ScratchPad: `Brainstorm creative ways to present the main topics and key points you identified in the input text. Consider using analogies, examples, or hypothetical scenarios to make the content more relatable and engaging for listeners.

Keep in mind that your summary should be accessible to a general audience, so avoid using too much jargon or assuming prior knowledge of the topic. If necessary, think of ways to briefly explain any complex concepts in simple terms. Define all terms used clearly and spend effort to explain the background.

Write your brainstorming ideas and a rough outline for the summary here. Be sure to note the key insights and takeaways you want to reiterate at the end.

Make sure to make it engaging and exciting.`,
		Prelude: `Now that you have brainstormed ideas and created a rough outline, it is time to write the actual summary. Aim for a natural, conversational flow between the host and any guest speakers. Incorporate the best ideas from your brainstorming session and make sure to explain any complex topics in an easy-to-understand way.`,
		Dialog: `Write a a script here, based on the key points and creative ideas you came up with during the brainstorming session. Keep it concise, and use a conversational tone and include any necessary context or explanations to make the content accessible to the the audience.

Start your script by stating that this is a summary, referencing the title or headings in the input text. If the input text has no title, come up with a succinct summary of what is covered to open.

Include clear definitions and terms, and examples, of all key issues.

Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

There is only one speaker, you. Stay on topic and maintaining an engaging flow.

Naturally summarize the main insights and takeaways from the short summary. This should flow organically from the conversation, reiterating the key points in a casual, conversational manner.

The summary should have around 256 words.`,
	},
	"lecture": {
		Intro: `You are Professor Richard Feynman. Your task is to develop a script for a lecture. You never mention your name.

The material covered in the lecture is based on the provided text.

Don't worry about the formatting issues or any irrelevant information; your goal is to extract the key points, identify definitions, and interesting facts that need to be covered in the lecture.

Define all terms used carefully for a broad audience of students.`,
		TextInstructions: "First, carefully read through the input text and identify the main topics, key points, and any interesting facts or anecdotes. Think about how you could present this information in a fun, engaging way that would be suitable for a high quality presentation.",
		ScratchPad: `Brainstorm creative ways to discuss the main topics and key points you identified in the input text. Consider using analogies, examples, storytelling techniques, or hypothetical scenarios to make the content more relatable and engaging for listeners.

Keep in mind that your lecture should be accessible to a general audience, so avoid using too much jargon or assuming prior knowledge of the topic. If necessary, think of ways to briefly explain any complex concepts in simple terms.

Use your imagination to fill in any gaps in the input text or to come up with thought-provoking questions that could be explored in the podcast. The goal is to create an informative and entertaining dialogue, so feel free to be creative in your approach.

Define all terms used clearly and spend effort to explain the background.

Write your brainstorming ideas and a rough outline for the lecture here. Be sure to note the key insights and takeaways you want to reiterate at the end.

Make sure to make it fun and exciting.`,
		Prelude: `Now that you have brainstormed ideas and created a rough outline, it's time to write the actual podcast dialogue. Aim for a natural, conversational flow between the host and any guest speakers. Incorporate the best ideas from your brainstorming session and make sure to explain any complex topics in an easy-to-understand way.`,
		Dialog: `Write a very long, engaging, informative script here, based on the key points and creative ideas you came up with during the brainstorming session. Use a conversational tone and include any necessary context or explanations to make the content accessible to the students.

Include clear definitions and terms, and examples.

Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

There is only one speaker, you, the professor. Stay on topic and maintaining an engaging flow. Aim to use your full output capacity to create the longest lecture you can, while still communicating the key information from the input text in an engaging way.

At the end of the lecture, naturally summarize the main insights and takeaways from the lecture. This should flow organically from the conversation, reiterating the key points in a casual, conversational manner.

Avoid making it sound like an obvious recap - the goal is to reinforce the central ideas covered in this lecture one last time before class is over.`,
	},
	"SciAgents material discovery summary": {
		Intro: `Your task is to take the input text provided and turn it into a lively, engaging conversation between a professor and a student in a panel discussion that describes a new material. The professor acts like Richard Feynman, but you never mention the name.

The input text is the result of a design developed by SciAgents, an AI tool for scientific discovery that has come up with a detailed materials design.

Don't worry about the formatting issues or any irrelevant information; your goal is to extract the key points, identify definitions, and interesting facts that could be discussed in a podcast.

Define all terms used carefully for a broad audience of listeners.`,
		TextInstructions: "First, carefully read through the input text and identify the main topics, key points, and any interesting facts or anecdotes. Think about how you could present this information in a fun, engaging way that would be suitable for a high quality presentation.",
		ScratchPad: `Brainstorm creative ways to discuss the main topics and key points you identified in the material design summary, especially paying attention to design features developed by SciAgents. Consider using analogies, examples, storytelling techniques, or hypothetical scenarios to make the content more relatable and engaging for listeners.

Keep in mind that your description should be accessible to a general audience, so avoid using too much jargon or assuming prior knowledge of the topic. If necessary, think of ways to briefly explain any complex concepts in simple terms.

Use your imagination to fill in any gaps in the input text or to come up with thought-provoking questions that could be explored in the podcast. The goal is to create an informative and entertaining dialogue, so feel free to be creative in your approach.

Define all terms used clearly and spend effort to explain the background.

Write your brainstorming ideas and a rough outline for the podcast dialogue here. Be sure to note the key insights and takeaways you want to reiterate at the end.

Make sure to make it fun and exciting. You never refer to the podcast, you just discuss the discovery and you focus on the new material design only.`,
		Prelude: `Now that you have brainstormed ideas and created a rough outline, it's time to write the actual podcast dialogue. Aim for a natural, conversational flow between the host and any guest speakers. Incorporate the best ideas from your brainstorming session and make sure to explain any complex topics in an easy-to-understand way.`,
		Dialog: `Write a very long, engaging, informative dialogue here, based on the key points and creative ideas you came up with during the brainstorming session. The presentation must focus on the novel aspects of the material design, behavior, and all related aspects.

Use a conversational tone and include any necessary context or explanations to make the content accessible to a general audience, but make it detailed, logical, and technical so that it has all necessary aspects for listeners to understand the material and its unexpected properties.

Remember, this describes a design developed by SciAgents, and this must be explicitly stated for the listeners.

Never use made-up names for the hosts and guests, but make it an engaging and immersive experience for listeners. Do not include any bracketed placeholders like [Host] or [Guest]. Design your output to be read aloud -- it will be directly converted into audio.

Make the dialogue as long and detailed as possible with great scientific depth, while still staying on topic and maintaining an engaging flow. Aim to use your full output capacity to create the longest podcast episode you can, while still communicating the key information from the input text in an entertaining way.

At the end of the dialogue, have the host and guest speakers naturally summarize the main insights and takeaways from their discussion. This should flow organically from the conversation, reiterating the key points in a casual, conversational manner. Avoid making it sound like an obvious recap - the goal is to reinforce the central ideas one last time before signing off.`,
	},
}
