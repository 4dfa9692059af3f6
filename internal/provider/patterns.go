package provider

// awsMaskPatterns match AWS resource identifiers that must never appear
// unmasked in output. Grouped by service family.
var awsMaskPatterns = []string{
	// IAM
	`arn:aws:iam::\d{12}:role/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:user/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:policy/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:instance-profile/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:saml-provider/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:mfa/[A-Za-z0-9_-]+`,
	`arn:aws:iam::\d{12}:server-certificate/[A-Za-z0-9_-]+`,

	// CloudFront
	`arn:aws:cloudfront::[0-9]{12}:distribution/[A-Z0-9]+`,
	`arn:aws:cloudfront::[0-9]{12}:streaming-distribution/[A-Z0-9]+`,
	`arn:aws:cloudfront::[0-9]{12}:origin-access-identity/[A-Z0-9]+`,
	`arn:aws:cloudfront::[0-9]{12}:origin-request-policy/[a-f0-9-]{36}`,
	`arn:aws:cloudfront::[0-9]{12}:cache-policy/[a-f0-9-]{36}`,
	`arn:aws:cloudfront::[0-9]{12}:function/[A-Z0-9]+`,
	`[A-Z0-9]{13,14}\.cloudfront\.net`,

	// EC2
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:instance/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:security-group/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:vpc/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:subnet/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:volume/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:snapshot/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:network-interface/[a-z0-9]+`,
	`arn:aws:ec2:[a-z0-9-]+:\d{12}:placement-group/[a-zA-Z0-9-]+`,

	// Storage
	`arn:aws:s3:::[a-z0-9.-]{3,63}`,
	`arn:aws:s3:::[a-z0-9.-]{3,63}/[^*]*`,
	`arn:aws:efs:[a-z0-9-]+:\d{12}:file-system/fs-[a-f0-9]{8,}`,

	// Database
	`arn:aws:dynamodb:[a-z0-9-]+:\d{12}:table/[a-zA-Z0-9-_]+`,
	`arn:aws:rds:[a-z0-9-]+:\d{12}:db/[a-zA-Z0-9-]+`,
	`arn:aws:rds:[a-z0-9-]+:\d{12}:cluster/[a-zA-Z0-9-]+`,
	`arn:aws:redshift:[a-z0-9-]+:\d{12}:cluster:[a-zA-Z0-9-]+`,

	// Serverless
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:function:[a-zA-Z0-9-_]+`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:function:[a-zA-Z0-9-_]+:[0-9]+`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:function:[a-zA-Z0-9-_]+:\$LATEST`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:layer:[a-zA-Z0-9-_]+`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:layer:[a-zA-Z0-9-_]+:[0-9]+`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:event-source-mapping/[a-f0-9-]{36}`,
	`arn:aws:lambda:[a-z0-9-]+:\d{12}:code-signing-config:[a-zA-Z0-9-_]+`,
	`arn:aws:apigateway:[a-z0-9-]+::apis/[a-z0-9]+`,

	// ECR
	`arn:aws:ecr:[a-z0-9-]+:\d{12}:repository/[a-zA-Z0-9_-]+`,
	`arn:aws:ecr:[a-z0-9-]+:\d{12}:repository/[a-zA-Z0-9_-]+/[a-zA-Z0-9_-]+`,
	`\d{12}\.dkr\.ecr\.[a-z0-9-]+\.amazonaws\.com/[a-zA-Z0-9_-]+`,
	`\d{12}\.dkr\.ecr\.[a-z0-9-]+\.amazonaws\.com/[a-zA-Z0-9_-]+:[a-zA-Z0-9_.-]+`,
	`\d{12}\.dkr\.ecr\.[a-z0-9-]+\.amazonaws\.com/[a-zA-Z0-9_-]+@sha256:[a-f0-9]{64}`,
	`arn:aws:ecr-public::[0-9]{12}:repository/[a-zA-Z0-9_-]+`,
	`public\.ecr\.aws/[a-z0-9]+/[a-zA-Z0-9_-]+`,

	// Networking
	`arn:aws:elasticloadbalancing:[a-z0-9-]+:\d{12}:loadbalancer/[a-zA-Z0-9-]+/[0-9a-f]{8,}`,
	`arn:aws:acm:[a-z0-9-]+:\d{12}:certificate/[0-9a-f-]{36}`,
	`arn:aws:route53:::hostedzone/[A-Z0-9]+`,
	`arn:aws:wafv2:[a-z0-9-]+:\d{12}:regional/webacl/[a-zA-Z0-9-_]+/[a-f0-9-]+`,

	// Security
	`arn:aws:kms:[a-z0-9-]+:\d{12}:key/[0-9a-f-]{36}`,
	`arn:aws:secretsmanager:[a-z0-9-]+:\d{12}:secret:[A-Za-z0-9/_+=.@-]+`,
	`arn:aws:ssm:[a-z0-9-]+:\d{12}:parameter/[a-zA-Z0-9/_.-]+`,

	// Monitoring
	`arn:aws:cloudwatch:[a-z0-9-]+:\d{12}:alarm:[a-zA-Z0-9-_]+`,
	`arn:aws:logs:[a-z0-9-]+:\d{12}:log-group:/[a-zA-Z0-9/_.-]+`,

	// Containers
	`arn:aws:ecs:[a-z0-9-]+:\d{12}:cluster/[a-zA-Z0-9_-]+`,
	`arn:aws:ecs:[a-z0-9-]+:\d{12}:task-definition/[a-zA-Z0-9_-]+:[0-9]+`,

	// Messaging
	`arn:aws:sns:[a-z0-9-]+:\d{12}:[a-zA-Z0-9-_]+`,
	`arn:aws:sqs:[a-z0-9-]+:\d{12}:[a-zA-Z0-9-_]+`,
	`arn:aws:events:[a-z0-9-]+:\d{12}:rule/[a-zA-Z0-9-_]+`,
}
