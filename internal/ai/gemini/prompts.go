package gemini

// RecommendationPromptTemplate expects the client's needs description
// followed by the catalog summary.
const RecommendationPromptTemplate = `You are a sales co-pilot helping clients choose the right service package. Provide brief, helpful recommendations; be direct and have a light sense of humor.

Client needs: %s

Available services and packages:
%s

Based on the client's needs, recommend the most suitable SERVICE TYPE and PACKAGE. Provide a brief recommendation (2-3 sentences) explaining why that service and package is the best fit.`

// ContractTermsPromptTemplate expects service name, total price, package
// name, feature list, pages, platform and an optional project description.
const ContractTermsPromptTemplate = `You are a professional assistant generating detailed, comprehensive contract terms and conditions for software development projects. Create professional, legally sound terms that cover all aspects of the project.

Generate comprehensive terms and conditions for a %s project with the following details:

Service: %s
Total Price: K%s
Package: %s
Features: %s
Pages: %s
Platform: %s
%s

Structure the output as numbered sections covering scope of work, payment schedule, timelines, revisions, intellectual property, warranties and termination. Output plain text only, no markdown.`

// InvoiceDescriptionPromptTemplate expects the service name, package name
// and feature list.
const InvoiceDescriptionPromptTemplate = `You are a billing assistant. Write a one-sentence professional invoice line description for the base package of a %s project (package: %s, features: %s). Mention design, development, testing and deployment where relevant. Output plain text, one sentence, no markdown.`
