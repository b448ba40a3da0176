package questions

import "policy-panic/internal/domain"

// Catalog returns the bundled question bank: 53 identity-management booth
// scenarios spread across the concept tags the generator also targets.
func Catalog() []domain.Question {
	return []domain.Question{
		{
			ID:       1,
			Scenario: "A student has separate passwords for email, wiki, and Git. They keep forgetting them.",
			Options: []domain.Option{
				{Text: "Enable Single Sign-On", Correct: true},
				{Text: "Write passwords on a sticky note", Correct: false},
				{Text: "Use the same password everywhere", Correct: false},
			},
			Explanation: "FreeIPA provides SSO so one login works across all services — no sticky notes needed.",
			Concept:     "Single Sign-On",
		},
		{
			ID:       2,
			Scenario: "Each server in the lab has its own user database. Adding a new member takes hours.",
			Options: []domain.Option{
				{Text: "Centralize identity with FreeIPA", Correct: true},
				{Text: "Clone the user file to each server", Correct: false},
				{Text: "Give everyone the root password", Correct: false},
			},
			Explanation: "A central directory lets you add a user once and they're recognized everywhere.",
			Concept:     "Central Identity",
		},
		{
			ID:       3,
			Scenario: "Your campus has 50 Linux machines. A new student needs access to all of them today.",
			Options: []domain.Option{
				{Text: "Create one FreeIPA account", Correct: true},
				{Text: "Create 50 local accounts manually", Correct: false},
				{Text: "Share a group login", Correct: false},
			},
			Explanation: "Central identity means one account grants access to every enrolled machine automatically.",
			Concept:     "Central Identity",
		},
		{
			ID:       4,
			Scenario: "After a merger, two departments each have their own LDAP servers with overlapping usernames.",
			Options: []domain.Option{
				{Text: "Consolidate into one FreeIPA directory", Correct: true},
				{Text: "Rename every user manually", Correct: false},
				{Text: "Keep both and hope for the best", Correct: false},
			},
			Explanation: "A single authoritative directory eliminates conflicts and simplifies administration.",
			Concept:     "Central Identity",
		},
		{
			ID:       5,
			Scenario: "A professor needs temporary access to three research services. She doesn't want three logins.",
			Options: []domain.Option{
				{Text: "Use FreeIPA SSO with one account", Correct: true},
				{Text: "Create three separate accounts", Correct: false},
				{Text: "Share a lab-wide credential", Correct: false},
			},
			Explanation: "SSO means one credential, many services — exactly the convenience and security balance you need.",
			Concept:     "Single Sign-On",
		},
		{
			ID:       6,
			Scenario: "You're managing users with flat files (/etc/passwd) across 20 servers. Updating one user takes 20 edits.",
			Options: []domain.Option{
				{Text: "Enroll all servers into FreeIPA", Correct: true},
				{Text: "Write a script to scp passwd files around", Correct: false},
				{Text: "Give up and use one shared account", Correct: false},
			},
			Explanation: "FreeIPA replaces scattered local files with a single source of truth via LDAP + SSSD.",
			Concept:     "Central Identity",
		},
		{
			ID:       7,
			Scenario: "A student logs into the campus portal once but still gets prompted for credentials in Jupyter and GitLab.",
			Options: []domain.Option{
				{Text: "Configure Kerberos-based SSO for all web apps", Correct: true},
				{Text: "Store the password in the browser", Correct: false},
				{Text: "Tell the student to just type faster", Correct: false},
			},
			Explanation: "Kerberos-based SSO lets the browser forward your ticket automatically — no more re-typing.",
			Concept:     "Single Sign-On",
		},
		{
			ID:       8,
			Scenario: "A user logs in once in the morning but has to re-enter credentials for every app.",
			Options: []domain.Option{
				{Text: "Issue a Kerberos ticket at login", Correct: true},
				{Text: "Cache the password in each app", Correct: false},
				{Text: "Remove authentication entirely", Correct: false},
			},
			Explanation: "Kerberos gives you a ticket-granting ticket (TGT) at login — apps trust the ticket, not a retyped password.",
			Concept:     "Kerberos Tickets",
		},
		{
			ID:       9,
			Scenario: "Two servers disagree on the current time by 10 minutes. Kerberos auth is failing.",
			Options: []domain.Option{
				{Text: "Sync clocks with NTP", Correct: true},
				{Text: "Increase the password length", Correct: false},
				{Text: "Restart both servers", Correct: false},
			},
			Explanation: "Kerberos tickets are time-sensitive. Clock skew > 5 min causes failures — NTP keeps things in sync.",
			Concept:     "Kerberos & Time Sync",
		},
		{
			ID:       10,
			Scenario: "A user's Kerberos ticket was issued 24 hours ago and SSH suddenly stops working.",
			Options: []domain.Option{
				{Text: "Renew or re-obtain the ticket (kinit)", Correct: true},
				{Text: "Reboot the client machine", Correct: false},
				{Text: "Disable Kerberos and use passwords only", Correct: false},
			},
			Explanation: "Kerberos tickets have a lifetime. Running 'kinit' refreshes your TGT — no reboot needed.",
			Concept:     "Kerberos Tickets",
		},
		{
			ID:       11,
			Scenario: "A password is being sent in plaintext over the network every time a user logs into a service.",
			Options: []domain.Option{
				{Text: "Switch to Kerberos — it never sends the password over the wire", Correct: true},
				{Text: "Encrypt the password with Base64", Correct: false},
				{Text: "Use a shorter password so less data is exposed", Correct: false},
			},
			Explanation: "Kerberos proves identity using tickets and encrypted exchanges — your password never crosses the network.",
			Concept:     "Kerberos Tickets",
		},
		{
			ID:       12,
			Scenario: "A service needs to verify it's really talking to the KDC and not an impersonator.",
			Options: []domain.Option{
				{Text: "Use mutual authentication built into Kerberos", Correct: true},
				{Text: "Check the server's IP address", Correct: false},
				{Text: "Trust that the network is safe", Correct: false},
			},
			Explanation: "Kerberos provides mutual authentication — both client and service prove their identity to each other.",
			Concept:     "Kerberos Tickets",
		},
		{
			ID:       13,
			Scenario: "Your keytab file, which stores service credentials, was accidentally left world-readable.",
			Options: []domain.Option{
				{Text: "Restrict permissions immediately and regenerate the keytab", Correct: true},
				{Text: "It's fine — keytabs are encrypted anyway", Correct: false},
				{Text: "Delete the keytab and disable the service", Correct: false},
			},
			Explanation: "A leaked keytab lets anyone impersonate that service. Regenerate it and lock down file permissions.",
			Concept:     "Kerberos Tickets",
		},
		{
			ID:       14,
			Scenario: "The robotics club needs access to the 3D printer server, but not the finance database.",
			Options: []domain.Option{
				{Text: "Create a 'robotics' group with targeted access", Correct: true},
				{Text: "Give every club member admin rights", Correct: false},
				{Text: "Let them use a shared account", Correct: false},
			},
			Explanation: "Groups let you grant exactly the right access — no more, no less. That's least privilege in action.",
			Concept:     "Groups & RBAC",
		},
		{
			ID:       15,
			Scenario: "An intern was accidentally added to the 'server-admins' group. They can delete VMs.",
			Options: []domain.Option{
				{Text: "Remove them from the group immediately", Correct: true},
				{Text: "Hope they don't notice", Correct: false},
				{Text: "Delete their entire account", Correct: false},
			},
			Explanation: "Fine-grained groups let you fix access mistakes without nuking the account. Audit your group memberships!",
			Concept:     "Least Privilege",
		},
		{
			ID:       16,
			Scenario: "Five teams each need access to different project repos. Managing per-user permissions is a nightmare.",
			Options: []domain.Option{
				{Text: "Create a group per team and assign repo access to groups", Correct: true},
				{Text: "Give all five teams access to all repos", Correct: false},
				{Text: "Have one person manage all commits", Correct: false},
			},
			Explanation: "Role-based groups scale: add a user to a team group and they instantly get the right repo access.",
			Concept:     "Groups & RBAC",
		},
		{
			ID:       17,
			Scenario: "A teaching assistant needs read access to student submissions but not write access to grades.",
			Options: []domain.Option{
				{Text: "Assign them to a 'TA' group with read-only rules", Correct: true},
				{Text: "Give them full instructor access temporarily", Correct: false},
				{Text: "Email grade files to them manually", Correct: false},
			},
			Explanation: "Granular group-based rules let you separate read and write privileges cleanly.",
			Concept:     "Groups & RBAC",
		},
		{
			ID:       18,
			Scenario: "A group called 'lab-users' should automatically include all members of 'physics-dept' and 'chem-dept'.",
			Options: []domain.Option{
				{Text: "Use nested groups — add both dept groups as members", Correct: true},
				{Text: "Manually copy every user from both departments", Correct: false},
				{Text: "Give everyone in the university lab access", Correct: false},
			},
			Explanation: "FreeIPA supports nested (indirect) groups — memberships cascade automatically.",
			Concept:     "Groups & RBAC",
		},
		{
			ID:       19,
			Scenario: "A developer left the company but is still in 12 different access groups.",
			Options: []domain.Option{
				{Text: "Disable the account — group access revokes automatically", Correct: true},
				{Text: "Remove them from each group one by one", Correct: false},
				{Text: "Just delete the groups", Correct: false},
			},
			Explanation: "Central identity means disabling one account cuts off all access immediately, regardless of group count.",
			Concept:     "Least Privilege",
		},
		{
			ID:       20,
			Scenario: "A student graduated last semester but still has active access to the research cluster.",
			Options: []domain.Option{
				{Text: "Disable the account centrally", Correct: true},
				{Text: "Change the cluster password", Correct: false},
				{Text: "Wait until the account expires on its own", Correct: false},
			},
			Explanation: "Central identity lets you disable access everywhere in one step — no orphaned accounts.",
			Concept:     "Account Lifecycle",
		},
		{
			ID:       21,
			Scenario: "A contractor's project ended a month ago. Nobody remembered to revoke their VPN access.",
			Options: []domain.Option{
				{Text: "Set account expiration dates upfront", Correct: true},
				{Text: "Manually check every month", Correct: false},
				{Text: "It's fine, they probably won't use it", Correct: false},
			},
			Explanation: "FreeIPA supports automatic account expiration — set it when onboarding and never forget deprovisioning.",
			Concept:     "Account Lifecycle",
		},
		{
			ID:       22,
			Scenario: "A new hire starts Monday. They need email, VPN, and lab access ready on day one.",
			Options: []domain.Option{
				{Text: "Create one FreeIPA account and add to the right groups", Correct: true},
				{Text: "File three separate tickets to three teams", Correct: false},
				{Text: "Lend them a colleague's login for the first week", Correct: false},
			},
			Explanation: "Centralized identity + groups means onboarding is one account creation, not a dozen manual steps.",
			Concept:     "Account Lifecycle",
		},
		{
			ID:       23,
			Scenario: "Summer interns arrive every June. You need 30 accounts created and removed by August.",
			Options: []domain.Option{
				{Text: "Batch-create accounts with expiration dates set to end of internship", Correct: true},
				{Text: "Reuse last year's intern accounts", Correct: false},
				{Text: "Give them all the same shared login", Correct: false},
			},
			Explanation: "Automating lifecycle with expiration dates means zero orphaned accounts after the program ends.",
			Concept:     "Account Lifecycle",
		},
		{
			ID:       24,
			Scenario: "A user changed departments but still has access to their old team's confidential data.",
			Options: []domain.Option{
				{Text: "Move them to the new department group and remove the old one", Correct: true},
				{Text: "Assume they won't look at old data", Correct: false},
				{Text: "Delete and recreate the account", Correct: false},
			},
			Explanation: "FreeIPA group management handles role transitions without recreating accounts.",
			Concept:     "Account Lifecycle",
		},
		{
			ID:       25,
			Scenario: "Users are setting passwords like 'password123' and 'qwerty'.",
			Options: []domain.Option{
				{Text: "Enforce a strong password policy", Correct: true},
				{Text: "Send a polite email reminder", Correct: false},
				{Text: "Disable password login entirely", Correct: false},
			},
			Explanation: "FreeIPA lets you enforce minimum length, complexity, and history rules across all users centrally.",
			Concept:     "Password Policy",
		},
		{
			ID:       26,
			Scenario: "An attacker is brute-forcing a student's SSH login — thousands of attempts per minute.",
			Options: []domain.Option{
				{Text: "Enable account lockout after failed attempts", Correct: true},
				{Text: "Change the SSH port number", Correct: false},
				{Text: "Unplug the server", Correct: false},
			},
			Explanation: "Centralized lockout policy blocks brute-force across all enrolled services automatically.",
			Concept:     "Password Policy",
		},
		{
			ID:       27,
			Scenario: "A user keeps alternating between the same two passwords every time they're forced to change.",
			Options: []domain.Option{
				{Text: "Enforce password history — block reuse of recent passwords", Correct: true},
				{Text: "Increase the change frequency to daily", Correct: false},
				{Text: "Allow it — at least they're changing", Correct: false},
			},
			Explanation: "FreeIPA password policies include history checks that prevent cycling through old passwords.",
			Concept:     "Password Policy",
		},
		{
			ID:       28,
			Scenario: "Different departments want different password rules: IT needs 16 chars, marketing needs 10.",
			Options: []domain.Option{
				{Text: "Create per-group password policies in FreeIPA", Correct: true},
				{Text: "Use the strictest rule for everyone", Correct: false},
				{Text: "Let each department manage their own LDAP", Correct: false},
			},
			Explanation: "FreeIPA supports multiple password policies assigned to different groups — flexible and central.",
			Concept:     "Password Policy",
		},
		{
			ID:       29,
			Scenario: "A web service's TLS certificate expired overnight. Users see scary browser warnings.",
			Options: []domain.Option{
				{Text: "Renew the certificate via FreeIPA's CA", Correct: true},
				{Text: "Tell users to click 'proceed anyway'", Correct: false},
				{Text: "Switch the service to HTTP", Correct: false},
			},
			Explanation: "FreeIPA includes a built-in Certificate Authority — renew and track certs before they expire.",
			Concept:     "Certificates",
		},
		{
			ID:       30,
			Scenario: "A developer's laptop was stolen. It had a client certificate used to access internal APIs.",
			Options: []domain.Option{
				{Text: "Revoke the certificate immediately", Correct: true},
				{Text: "Rotate every API key in the company", Correct: false},
				{Text: "Nothing — laptops have disk encryption", Correct: false},
			},
			Explanation: "FreeIPA's CA lets you revoke individual certs instantly, blocking stolen credentials.",
			Concept:     "Certificates",
		},
		{
			ID:       31,
			Scenario: "You have 40 internal web services. Manually requesting certs from an external CA is slow and expensive.",
			Options: []domain.Option{
				{Text: "Use FreeIPA's built-in CA to issue certs internally", Correct: true},
				{Text: "Run all 40 services on plain HTTP", Correct: false},
				{Text: "Buy a wildcard cert and share the private key", Correct: false},
			},
			Explanation: "FreeIPA's integrated Dogtag CA issues and manages certs for internal services at no cost.",
			Concept:     "Certificates",
		},
		{
			ID:       32,
			Scenario: "A service auto-renews its certificate but the new cert has a different key. Clients stop trusting it.",
			Options: []domain.Option{
				{Text: "Ensure clients trust the FreeIPA CA root — individual cert keys can change safely", Correct: true},
				{Text: "Pin the old certificate in every client", Correct: false},
				{Text: "Disable auto-renewal to avoid surprises", Correct: false},
			},
			Explanation: "When clients trust the CA root, they'll accept any valid cert signed by it — rotation is seamless.",
			Concept:     "Certificates",
		},
		{
			ID:       33,
			Scenario: "Someone set up a rogue server on the network pretending to be the print server.",
			Options: []domain.Option{
				{Text: "Require host-based authentication via FreeIPA", Correct: true},
				{Text: "Check the server room manually", Correct: false},
				{Text: "Ignore it — probably a misconfiguration", Correct: false},
			},
			Explanation: "FreeIPA manages host identities too — only enrolled, authenticated machines are trusted.",
			Concept:     "Host Identity",
		},
		{
			ID:       34,
			Scenario: "A new server was added to the cluster but nobody can SSH into it using their FreeIPA credentials.",
			Options: []domain.Option{
				{Text: "Enroll the server into the FreeIPA domain (ipa-client-install)", Correct: true},
				{Text: "Copy /etc/passwd from another server", Correct: false},
				{Text: "Create local accounts for everyone", Correct: false},
			},
			Explanation: "Servers need to be enrolled into FreeIPA before they can authenticate domain users.",
			Concept:     "Host Identity",
		},
		{
			ID:       35,
			Scenario: "You want to restrict which users can log into a specific lab machine, not all machines.",
			Options: []domain.Option{
				{Text: "Use host-based access control (HBAC) rules in FreeIPA", Correct: true},
				{Text: "Edit /etc/ssh/sshd_config on that one machine", Correct: false},
				{Text: "Put a physical lock on the machine", Correct: false},
			},
			Explanation: "HBAC rules let you control who can access which hosts and services — all managed centrally.",
			Concept:     "Host Identity",
		},
		{
			ID:       36,
			Scenario: "You find a bug in FreeIPA's web UI. What's the best first step?",
			Options: []domain.Option{
				{Text: "File a bug report on the public tracker", Correct: true},
				{Text: "Complain on social media", Correct: false},
				{Text: "Switch to a proprietary product", Correct: false},
			},
			Explanation: "FreeIPA is open source — filing bugs helps the whole community and your fix might ship in the next release!",
			Concept:     "Open Source",
		},
		{
			ID:       37,
			Scenario: "You want to add a feature to FreeIPA but you're 'just a student'.",
			Options: []domain.Option{
				{Text: "Fork the repo, make a PR — contributions welcome!", Correct: true},
				{Text: "Wait until you're a senior engineer", Correct: false},
				{Text: "Pay someone to do it", Correct: false},
			},
			Explanation: "Open-source projects thrive on student contributions. FreeIPA's community actively mentors new contributors.",
			Concept:     "Open Source",
		},
		{
			ID:       38,
			Scenario: "Your university wants identity management but can't afford a commercial product license.",
			Options: []domain.Option{
				{Text: "Use FreeIPA — it's completely free and open source", Correct: true},
				{Text: "Build your own system from scratch", Correct: false},
				{Text: "Just use spreadsheets to track accounts", Correct: false},
			},
			Explanation: "FreeIPA is enterprise-grade identity management with zero licensing cost — backed by Red Hat and a global community.",
			Concept:     "Open Source",
		},
		{
			ID:       39,
			Scenario: "You're reading FreeIPA's source code and notice the documentation for a feature is outdated.",
			Options: []domain.Option{
				{Text: "Submit a documentation patch — it's a valuable contribution", Correct: true},
				{Text: "Ignore it — docs aren't real code", Correct: false},
				{Text: "Wait for someone else to fix it", Correct: false},
			},
			Explanation: "Documentation contributions are highly valued in open source. It's often the easiest way to start contributing!",
			Concept:     "Open Source",
		},
		{
			ID:       40,
			Scenario: "Every developer has unrestricted sudo on production servers 'because it's easier'.",
			Options: []domain.Option{
				{Text: "Define sudo rules centrally in FreeIPA", Correct: true},
				{Text: "Remove sudo entirely", Correct: false},
				{Text: "Log everything and hope for the best", Correct: false},
			},
			Explanation: "FreeIPA manages sudo rules centrally — grant only the specific commands each role needs.",
			Concept:     "Sudo Rules",
		},
		{
			ID:       41,
			Scenario: "A CI bot needs to restart a service on deploy but shouldn't have full root access.",
			Options: []domain.Option{
				{Text: "Grant a narrow sudo rule for just that command", Correct: true},
				{Text: "Run the bot as root", Correct: false},
				{Text: "Disable the service restart step", Correct: false},
			},
			Explanation: "Targeted sudo rules are a core FreeIPA feature — least privilege even for automation.",
			Concept:     "Sudo Rules",
		},
		{
			ID:       42,
			Scenario: "Sudo rules are scattered across 30 servers in /etc/sudoers files. Nobody knows who has what access.",
			Options: []domain.Option{
				{Text: "Migrate all sudo rules to FreeIPA for central management", Correct: true},
				{Text: "Grep each server manually once a quarter", Correct: false},
				{Text: "Remove sudoers files and give everyone root", Correct: false},
			},
			Explanation: "FreeIPA centralizes sudo rules so you can audit and update them from one place.",
			Concept:     "Sudo Rules",
		},
		{
			ID:       43,
			Scenario: "A student types 'ssh lab-server' but gets 'host not found'. The IP address works fine.",
			Options: []domain.Option{
				{Text: "Register the hostname in FreeIPA's integrated DNS", Correct: true},
				{Text: "Tell everyone to memorize IP addresses", Correct: false},
				{Text: "Edit /etc/hosts on every client machine", Correct: false},
			},
			Explanation: "FreeIPA includes an integrated DNS server — hostnames resolve automatically for enrolled clients.",
			Concept:     "DNS & Discovery",
		},
		{
			ID:       44,
			Scenario: "New machines join the network but clients can't find them by name until someone manually adds DNS records.",
			Options: []domain.Option{
				{Text: "Enable auto-DNS registration when hosts enroll in FreeIPA", Correct: true},
				{Text: "Run a cron job to scan the network", Correct: false},
				{Text: "Use IP addresses only", Correct: false},
			},
			Explanation: "FreeIPA can automatically create DNS records when hosts are enrolled — no manual zone editing.",
			Concept:     "DNS & Discovery",
		},
		{
			ID:       45,
			Scenario: "Kerberos clients can't automatically find the KDC because there are no SRV records in DNS.",
			Options: []domain.Option{
				{Text: "Let FreeIPA manage DNS — it creates Kerberos SRV records automatically", Correct: true},
				{Text: "Hardcode the KDC address on every client", Correct: false},
				{Text: "Disable Kerberos and use simple passwords", Correct: false},
			},
			Explanation: "FreeIPA's DNS integration publishes SRV records so clients auto-discover the KDC and other services.",
			Concept:     "DNS & Discovery",
		},
		{
			ID:       46,
			Scenario: "A student's password was phished. You want to add a second factor to prevent future breaches.",
			Options: []domain.Option{
				{Text: "Enable OTP (one-time password) in FreeIPA", Correct: true},
				{Text: "Make the password longer", Correct: false},
				{Text: "Require password changes every week", Correct: false},
			},
			Explanation: "FreeIPA supports TOTP/HOTP tokens — even a stolen password is useless without the second factor.",
			Concept:     "Two-Factor Auth",
		},
		{
			ID:       47,
			Scenario: "Admins want 2FA for SSH but regular users only need passwords for now.",
			Options: []domain.Option{
				{Text: "Apply an OTP policy to the admin group only", Correct: true},
				{Text: "Force 2FA on everyone or no one", Correct: false},
				{Text: "Buy a separate 2FA product for admins", Correct: false},
			},
			Explanation: "FreeIPA allows per-user or per-group authentication policies — 2FA where it matters most.",
			Concept:     "Two-Factor Auth",
		},
		{
			ID:       48,
			Scenario: "A researcher lost their hardware OTP token. They're locked out of everything.",
			Options: []domain.Option{
				{Text: "Admin revokes the old token and issues a new one from FreeIPA", Correct: true},
				{Text: "Disable 2FA for the whole organization", Correct: false},
				{Text: "Tell them to buy a new token themselves", Correct: false},
			},
			Explanation: "FreeIPA's self-service + admin portal makes token management painless — revoke, reissue, done.",
			Concept:     "Two-Factor Auth",
		},
		{
			ID:       49,
			Scenario: "Your Linux lab needs to let Windows Active Directory users log in without creating separate accounts.",
			Options: []domain.Option{
				{Text: "Set up a cross-realm trust between FreeIPA and AD", Correct: true},
				{Text: "Manually sync passwords between AD and Linux", Correct: false},
				{Text: "Replace all Linux machines with Windows", Correct: false},
			},
			Explanation: "FreeIPA supports AD trust — Windows users authenticate with their existing AD credentials on Linux.",
			Concept:     "Trust & Federation",
		},
		{
			ID:       50,
			Scenario: "Two organizations want to share a research cluster but each has their own identity system.",
			Options: []domain.Option{
				{Text: "Establish a trust relationship between the two domains", Correct: true},
				{Text: "Merge both organizations into one directory", Correct: false},
				{Text: "Create duplicate accounts in both systems", Correct: false},
			},
			Explanation: "Federation / cross-realm trusts let separate identity domains cooperate without merging.",
			Concept:     "Trust & Federation",
		},
		{
			ID:       51,
			Scenario: "Someone deleted a critical group last night. Nobody knows who did it or when.",
			Options: []domain.Option{
				{Text: "Check FreeIPA's audit log — every change is recorded", Correct: true},
				{Text: "Restore from backup and move on", Correct: false},
				{Text: "Send an angry email to the whole team", Correct: false},
			},
			Explanation: "FreeIPA logs every administrative action with timestamps and the responsible user — full accountability.",
			Concept:     "Audit & Logging",
		},
		{
			ID:       52,
			Scenario: "An auditor asks: 'Who has had admin access in the last 90 days?' You have no records.",
			Options: []domain.Option{
				{Text: "Use FreeIPA's audit trail and group membership history", Correct: true},
				{Text: "Guess from memory", Correct: false},
				{Text: "Tell the auditor it's not possible to know", Correct: false},
			},
			Explanation: "Central identity with audit logging means you can answer compliance questions in minutes.",
			Concept:     "Audit & Logging",
		},
		{
			ID:       53,
			Scenario: "You suspect someone is adding themselves to privileged groups after hours.",
			Options: []domain.Option{
				{Text: "Review FreeIPA's change logs for group modifications", Correct: true},
				{Text: "Disable group changes entirely", Correct: false},
				{Text: "Assume good intentions and ignore it", Correct: false},
			},
			Explanation: "FreeIPA records who made what change and when — catch unauthorized escalations quickly.",
			Concept:     "Audit & Logging",
		},
	}
}
