package depkeys

// keywordEntry maps a dependency naming pattern to the directory-name
// keywords it implies and a display purpose for matched directories.
// Order matters: the first registered entry wins when several dependencies
// imply the same keyword.
type keywordEntry struct {
	// Patterns are matched against declared dependency names. A dependency
	// activates the entry when its name equals a pattern or contains it as
	// a path/hyphen segment.
	Patterns []string

	// Canonical is the conventional short name of the dependency, used for
	// the submodule qualifier check.
	Canonical string

	// Keywords are directory basenames conventionally used for this
	// dependency's artifacts.
	Keywords []string

	// Purpose is the human-readable label for a matched directory.
	Purpose string

	// Markers are import/reference tokens used to confirm a basename match
	// by scanning a small sample of the directory's files. Confirmation
	// strengthens a match but is never required.
	Markers []string
}

// keywordTable is the curated dependency convention table. Entries cover the
// ecosystems the classifier is expected to meet; inactive entries (dependency
// not declared) cost nothing at runtime.
var keywordTable = []keywordEntry{
	{
		Patterns:  []string{"i18next", "react-i18next", "vue-i18n", "react-intl", "next-intl", "formatjs"},
		Canonical: "i18n",
		Keywords:  []string{"locales", "locale", "i18n", "translations", "lang", "langs"},
		Purpose:   "internationalization resources",
		Markers:   []string{"i18next", "useTranslation", "FormattedMessage", "vue-i18n"},
	},
	{
		Patterns:  []string{"redux", "@reduxjs/toolkit", "react-redux"},
		Canonical: "redux",
		Keywords:  []string{"redux", "store", "slices", "reducers", "actions"},
		Purpose:   "Redux state management",
		Markers:   []string{"createSlice", "configureStore", "useSelector", "redux"},
	},
	{
		Patterns:  []string{"zustand"},
		Canonical: "zustand",
		Keywords:  []string{"store", "stores", "zustand"},
		Purpose:   "Zustand state management",
		Markers:   []string{"zustand", "create("},
	},
	{
		Patterns:  []string{"mobx", "mobx-react", "mobx-react-lite"},
		Canonical: "mobx",
		Keywords:  []string{"stores", "store", "mobx"},
		Purpose:   "MobX state management",
		Markers:   []string{"mobx", "observable", "makeAutoObservable"},
	},
	{
		Patterns:  []string{"@tanstack/react-query", "react-query", "swr"},
		Canonical: "queries",
		Keywords:  []string{"queries", "query", "mutations"},
		Purpose:   "server-state queries",
		Markers:   []string{"useQuery", "useMutation", "useSWR"},
	},
	{
		Patterns:  []string{"graphql", "@apollo/client", "apollo-server", "urql"},
		Canonical: "graphql",
		Keywords:  []string{"graphql", "queries", "mutations", "resolvers", "schema"},
		Purpose:   "GraphQL operations",
		Markers:   []string{"gql`", "graphql", "useQuery"},
	},
	{
		Patterns:  []string{"styled-components", "@emotion/react", "@emotion/styled"},
		Canonical: "styles",
		Keywords:  []string{"styles", "styled", "themes", "theme"},
		Purpose:   "CSS-in-JS styling",
		Markers:   []string{"styled.", "styled(", "css`"},
	},
	{
		Patterns:  []string{"tailwindcss"},
		Canonical: "tailwind",
		Keywords:  []string{"styles", "tailwind"},
		Purpose:   "Tailwind styling",
		Markers:   []string{"tailwind", "@apply"},
	},
	{
		Patterns:  []string{"storybook", "@storybook/react", "@storybook/vue3"},
		Canonical: "stories",
		Keywords:  []string{"stories", "storybook"},
		Purpose:   "Storybook stories",
		Markers:   []string{"storybook", "Meta", "StoryObj"},
	},
	{
		Patterns:  []string{"jest", "vitest", "mocha", "@testing-library/react"},
		Canonical: "tests",
		Keywords:  []string{"__tests__", "tests", "test", "__mocks__", "mocks"},
		Purpose:   "test suites",
		Markers:   []string{"describe(", "it(", "expect("},
	},
	{
		Patterns:  []string{"cypress"},
		Canonical: "cypress",
		Keywords:  []string{"cypress", "e2e"},
		Purpose:   "Cypress end-to-end tests",
		Markers:   []string{"cy.", "cypress"},
	},
	{
		Patterns:  []string{"playwright", "@playwright/test"},
		Canonical: "playwright",
		Keywords:  []string{"e2e", "playwright"},
		Purpose:   "Playwright end-to-end tests",
		Markers:   []string{"playwright", "page."},
	},
	{
		Patterns:  []string{"prisma", "@prisma/client"},
		Canonical: "prisma",
		Keywords:  []string{"prisma", "migrations"},
		Purpose:   "Prisma schema and migrations",
		Markers:   []string{"prisma", "PrismaClient"},
	},
	{
		Patterns:  []string{"typeorm", "sequelize", "mongoose", "drizzle-orm", "knex"},
		Canonical: "models",
		Keywords:  []string{"entities", "models", "migrations", "repositories"},
		Purpose:   "ORM data layer",
		Markers:   []string{"@Entity", "sequelize", "mongoose.Schema", "knex"},
	},
	{
		Patterns:  []string{"axios", "ky", "got"},
		Canonical: "api",
		Keywords:  []string{"api", "apis", "http", "clients"},
		Purpose:   "HTTP API clients",
		Markers:   []string{"axios", "ky.", "got("},
	},
	{
		Patterns:  []string{"express", "koa", "fastify", "@nestjs/core"},
		Canonical: "server",
		Keywords:  []string{"routes", "middleware", "middlewares", "controllers"},
		Purpose:   "HTTP server layer",
		Markers:   []string{"express", "fastify", "@Controller", "router."},
	},
	{
		Patterns:  []string{"socket.io", "socket.io-client", "ws"},
		Canonical: "sockets",
		Keywords:  []string{"sockets", "socket", "ws", "events"},
		Purpose:   "WebSocket messaging",
		Markers:   []string{"socket.io", "io(", "new WebSocket"},
	},
	{
		Patterns:  []string{"firebase", "firebase-admin"},
		Canonical: "firebase",
		Keywords:  []string{"firebase", "functions"},
		Purpose:   "Firebase integration",
		Markers:   []string{"firebase", "initializeApp"},
	},
	{
		Patterns:  []string{"aws-sdk", "@aws-sdk/client-s3", "@aws-sdk/client-dynamodb"},
		Canonical: "aws",
		Keywords:  []string{"aws", "lambdas", "lambda", "functions"},
		Purpose:   "AWS integration",
		Markers:   []string{"aws-sdk", "@aws-sdk"},
	},
	{
		Patterns:  []string{"react-router", "react-router-dom", "vue-router"},
		Canonical: "routes",
		Keywords:  []string{"routes", "router", "routing"},
		Purpose:   "client-side routing",
		Markers:   []string{"react-router", "createBrowserRouter", "useNavigate"},
	},
	{
		Patterns:  []string{"react-hook-form", "formik", "yup", "zod"},
		Canonical: "forms",
		Keywords:  []string{"forms", "form", "validations", "validation", "schemas"},
		Purpose:   "form handling and validation",
		Markers:   []string{"useForm", "Formik", "yup.", "z.object"},
	},
	{
		Patterns:  []string{"d3", "chart.js", "recharts", "echarts"},
		Canonical: "charts",
		Keywords:  []string{"charts", "chart", "visualizations", "graphs"},
		Purpose:   "data visualization",
		Markers:   []string{"d3.", "Chart(", "recharts", "echarts"},
	},
	{
		Patterns:  []string{"protobufjs", "grpc", "@grpc/grpc-js"},
		Canonical: "proto",
		Keywords:  []string{"proto", "protos", "grpc", "rpc"},
		Purpose:   "protocol buffer definitions",
		Markers:   []string{"protobuf", "grpc"},
	},
	{
		Patterns:  []string{"docker", "dockerode"},
		Canonical: "docker",
		Keywords:  []string{"docker", "containers"},
		Purpose:   "container tooling",
		Markers:   []string{"docker"},
	},
}
